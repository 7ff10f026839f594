package styles

// Plain unicode glyphs; every one is a single terminal cell wide.
const (
	IconLayout  = "▦"
	IconCheck   = "✓"
	IconX       = "✗"
	IconWarning = "!"
	IconArrow   = "→"
	IconDot     = "•"
	IconWindow  = "◰"
	IconClose   = "×"
	IconPinned  = "◆"
	IconVersion = "◇"
	IconCommit  = "#"
	IconClock   = "◷"
	IconFile    = "▤"
	IconDoctor  = "+"
)
