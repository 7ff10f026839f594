package entity

import "github.com/google/uuid"

// IDGenerator returns a fresh unique identifier.
type IDGenerator func() string

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}

// Factory creates regions and arrangements with generated identifiers.
type Factory struct {
	newID IDGenerator
}

// NewFactory creates a factory. A nil generator falls back to NewUUID.
func NewFactory(gen IDGenerator) *Factory {
	if gen == nil {
		gen = NewUUID
	}
	return &Factory{newID: gen}
}

// NewContainer creates an empty container.
func (f *Factory) NewContainer() *Container {
	return &Container{regionBase: regionBase{id: f.newID()}}
}

// NewBridge creates an empty bridge.
func (f *Factory) NewBridge() *Bridge {
	return &Bridge{regionBase: regionBase{id: f.newID()}}
}

// NewSplit creates a detached split over main and remainder. It is used to
// assemble trees outside an arrangement, for example while decoding.
func (f *Factory) NewSplit(main, remainder Region, o Orientation, weight float64) (*Split, error) {
	if main == nil || remainder == nil || main == remainder {
		return nil, errNotAttached(nil)
	}
	s := f.newSplit()
	if err := s.SetOrientation(o); err != nil {
		return nil, err
	}
	s.SetWeight(weight)
	s.main = main
	s.remainder = remainder
	return s, nil
}

// NewArrangement creates an arrangement over root. A nil root becomes an
// empty container.
func (f *Factory) NewArrangement(root Region) *Arrangement {
	if root == nil {
		root = f.NewContainer()
	}
	return &Arrangement{id: f.newID(), root: root, factory: f}
}

func (f *Factory) newSplit() *Split {
	return &Split{
		regionBase: regionBase{id: f.newID()},
		weight:     DefaultWeight,
	}
}
