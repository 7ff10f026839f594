package entity

import "fmt"

func seqIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("r%d", n)
	}
}

func newTestFactory() *Factory {
	return NewFactory(seqIDs())
}

func containerWith(f *Factory, keys ...string) *Container {
	c := f.NewContainer()
	for _, k := range keys {
		_, _ = c.Put(k, NewBasicItem(k))
	}
	return c
}
