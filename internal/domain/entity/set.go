package entity

import "fmt"

// ArrangementSet is the ordered list of arrangements of one docking surface.
// Index 0 is the main arrangement embedded in the host; the others float in
// their own windows.
type ArrangementSet struct {
	factory      *Factory
	arrangements []*Arrangement
}

// NewArrangementSet creates a set whose main arrangement holds one empty container.
func NewArrangementSet(factory *Factory) *ArrangementSet {
	if factory == nil {
		factory = NewFactory(nil)
	}
	return &ArrangementSet{
		factory:      factory,
		arrangements: []*Arrangement{factory.NewArrangement(nil)},
	}
}

// Factory returns the factory used for new regions.
func (s *ArrangementSet) Factory() *Factory { return s.factory }

// Main returns the main arrangement.
func (s *ArrangementSet) Main() *Arrangement { return s.arrangements[0] }

// Arrangements returns the arrangements in order.
func (s *ArrangementSet) Arrangements() []*Arrangement {
	out := make([]*Arrangement, len(s.arrangements))
	copy(out, s.arrangements)
	return out
}

// Len returns the number of arrangements.
func (s *ArrangementSet) Len() int { return len(s.arrangements) }

// IndexOf returns the position of a, or -1.
func (s *ArrangementSet) IndexOf(a *Arrangement) int {
	for i, arr := range s.arrangements {
		if arr == a {
			return i
		}
	}
	return -1
}

// IsMain reports whether a is the main arrangement.
func (s *ArrangementSet) IsMain(a *Arrangement) bool {
	return s.IndexOf(a) == 0
}

// Add appends a floating arrangement.
func (s *ArrangementSet) Add(a *Arrangement) error {
	if a == nil {
		return fmt.Errorf("%w: nil arrangement", ErrInvalidArgument)
	}
	if s.IndexOf(a) >= 0 {
		return fmt.Errorf("%w: arrangement %s already in set", ErrInvalidArgument, a.id)
	}
	s.arrangements = append(s.arrangements, a)
	return nil
}

// Remove drops a floating arrangement. The main arrangement cannot be removed.
func (s *ArrangementSet) Remove(a *Arrangement) error {
	i := s.IndexOf(a)
	switch {
	case i < 0:
		return fmt.Errorf("%w: arrangement not in set", ErrInvalidArgument)
	case i == 0:
		return fmt.Errorf("%w: main arrangement cannot be removed", ErrInvalidArgument)
	}
	s.arrangements = append(s.arrangements[:i], s.arrangements[i+1:]...)
	return nil
}

// Replace swaps in a whole new list of arrangements. The first becomes main.
func (s *ArrangementSet) Replace(arrangements []*Arrangement) error {
	if len(arrangements) == 0 {
		return fmt.Errorf("%w: at least one arrangement is required", ErrInvalidArgument)
	}
	for _, a := range arrangements {
		if a == nil {
			return fmt.Errorf("%w: nil arrangement", ErrInvalidArgument)
		}
	}
	s.arrangements = append([]*Arrangement(nil), arrangements...)
	return nil
}

// ArrangementByID returns the arrangement with the given id, or nil.
func (s *ArrangementSet) ArrangementByID(id string) *Arrangement {
	for _, a := range s.arrangements {
		if a.id == id {
			return a
		}
	}
	return nil
}

// ArrangementOf returns the arrangement whose tree holds r, or nil.
func (s *ArrangementSet) ArrangementOf(r Region) *Arrangement {
	for _, a := range s.arrangements {
		if a.Contains(r) {
			return a
		}
	}
	return nil
}

// FindContainer returns the container holding key and its arrangement.
func (s *ArrangementSet) FindContainer(key Key) (*Arrangement, *Container) {
	for _, a := range s.arrangements {
		if c := a.FindContainer(key); c != nil {
			return a, c
		}
	}
	return nil, nil
}

// FindBridge returns the bridge keyed by key and its arrangement.
func (s *ArrangementSet) FindBridge(key Key) (*Arrangement, *Bridge) {
	for _, a := range s.arrangements {
		if b := a.FindBridge(key); b != nil {
			return a, b
		}
	}
	return nil, nil
}

// ContainsKey reports whether key is held by any container or bridge.
func (s *ArrangementSet) ContainsKey(key Key) bool {
	if key == nil {
		return false
	}
	if _, c := s.FindContainer(key); c != nil {
		return true
	}
	_, b := s.FindBridge(key)
	return b != nil
}

// AllKeys returns every key of every arrangement in order.
func (s *ArrangementSet) AllKeys() []Key {
	var keys []Key
	for _, a := range s.arrangements {
		keys = append(keys, a.Keys()...)
	}
	return keys
}

// ValidateKeys fails when a key appears more than once across the set.
func (s *ArrangementSet) ValidateKeys() error {
	return ValidateUniqueKeys(s.arrangements)
}

// ValidateUniqueKeys fails when a key appears more than once across arrangements.
func ValidateUniqueKeys(arrangements []*Arrangement) error {
	var seen []Key
	for _, a := range arrangements {
		for _, k := range a.Keys() {
			if indexOfKey(seen, k) >= 0 {
				return fmt.Errorf("%w: duplicate key %v", ErrInvalidArgument, k)
			}
			seen = append(seen, k)
		}
	}
	return nil
}
