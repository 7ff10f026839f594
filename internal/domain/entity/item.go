package entity

// Host is the descriptive surface an attached item publishes to.
// Rendering it is the job of the embedding toolkit.
type Host interface {
	SetTitle(title string)
	SetIcon(icon string)
	SetStatus(status string)
}

// Item is a dockable unit of content.
//
// Attached is called once the item is placed in a container slot.
// Detaching is asked before a user-initiated close and may refuse it.
// Detached is called after the item left its slot.
type Item interface {
	Attached(host Host)
	Detaching() bool
	Detached()
}

// Content is opaque bridged content. It is never inspected.
type Content any

// BasicItem is a ready-made Item carrying a title, an icon and a status.
type BasicItem struct {
	Title  string
	Icon   string
	Status string
	Body   string
	// Pinned items refuse to close.
	Pinned bool

	host Host
}

// NewBasicItem creates an item with the given title.
func NewBasicItem(title string) *BasicItem {
	return &BasicItem{Title: title}
}

// Attached publishes the item's descriptive state to its host.
func (i *BasicItem) Attached(host Host) {
	i.host = host
	if host == nil {
		return
	}
	host.SetTitle(i.Title)
	host.SetIcon(i.Icon)
	host.SetStatus(i.Status)
}

// Detaching refuses when the item is pinned.
func (i *BasicItem) Detaching() bool {
	return !i.Pinned
}

// Detached forgets the host.
func (i *BasicItem) Detached() {
	i.host = nil
}

// IsAttached reports whether the item currently has a host.
func (i *BasicItem) IsAttached() bool {
	return i.host != nil
}

// SetTitle updates the title and forwards it to the host.
func (i *BasicItem) SetTitle(title string) {
	i.Title = title
	if i.host != nil {
		i.host.SetTitle(title)
	}
}

// SetStatus updates the status and forwards it to the host.
func (i *BasicItem) SetStatus(status string) {
	i.Status = status
	if i.host != nil {
		i.host.SetStatus(status)
	}
}
