package main

import (
	"fmt"

	src2doc "github.com/alnah/go-src2doc"
)

// poolAdapter adapts src2doc.GeneratorPool to the Pool interface.
type poolAdapter struct {
	pool *src2doc.GeneratorPool
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

// Acquire gets a generator from the pool.
func (a *poolAdapter) Acquire() (Documenter, error) {
	g, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Release returns a generator to the pool.
// Panics on a foreign type: only generators from Acquire belong here.
func (a *poolAdapter) Release(d Documenter) {
	g, ok := d.(*src2doc.Generator)
	if !ok {
		panic(fmt.Sprintf("poolAdapter: unexpected type %T", d))
	}
	a.pool.Release(g)
}

// Size returns the pool capacity.
func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

// Close releases all pooled generators.
func (a *poolAdapter) Close() error {
	return a.pool.Close()
}
