package commander

import "sync/atomic"

type counter struct {
	atomic.Uint64
}

func newCounter() *counter {
	return &counter{
		Uint64: atomic.Uint64{},
	}
}

func (c *counter) increment() uint64 {
	return c.Add(1)
}

func (c *counter) value() uint64 {
	return c.Load()
}
