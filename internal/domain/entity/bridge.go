package entity

// Bridge hosts one opaque content under a key, such as a nested
// document area embedded between docked views.
type Bridge struct {
	regionBase
	key     Key
	content Content
}

// Kind implements Region.
func (b *Bridge) Kind() RegionKind { return RegionBridge }

// Key returns the bridged key, nil when the bridge is empty.
func (b *Bridge) Key() Key { return b.key }

// Content returns the bridged content. A keyed bridge may carry nil content.
func (b *Bridge) Content() Content { return b.content }

// HasKey reports whether the bridge is keyed.
func (b *Bridge) HasKey() bool { return b.key != nil }

// Set keys the bridge and stores content, returning the previous content.
func (b *Bridge) Set(key Key, content Content) (Content, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	prev := b.content
	b.key = key
	b.content = content
	return prev, nil
}

// Clear empties the bridge and returns what it held.
func (b *Bridge) Clear() (Key, Content) {
	key, content := b.key, b.content
	b.key = nil
	b.content = nil
	return key, content
}
