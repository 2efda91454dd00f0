package src2doc

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing bounds.
const (
	// MinPoolSize keeps at least one worker even on tiny machines.
	MinPoolSize = 1

	// MaxPoolSize caps browser instances; each one holds around 200MB.
	MaxPoolSize = 8

	// cpuDivisor reserves cores for Chrome's own child processes.
	cpuDivisor = 2
)

// GeneratorPool manages a pool of Generator instances for parallel
// processing. With PDF export enabled each generator owns its own browser
// instance, enabling true parallelism. Generators are built lazily, on
// first Acquire, so an unused pool costs nothing.
type GeneratorPool struct {
	size       int
	opts       []Option
	generators []*Generator
	sem        chan *Generator
	mu         sync.Mutex
	created    int
	closed     bool
}

// NewGeneratorPool creates a pool with capacity for n Generator instances,
// each configured with the same options. Generators are created lazily when
// acquired, not at pool creation.
func NewGeneratorPool(n int, opts ...Option) *GeneratorPool {
	if n < 1 {
		n = 1
	}

	return &GeneratorPool{
		size:       n,
		opts:       opts,
		generators: make([]*Generator, 0, n),
		sem:        make(chan *Generator, n),
	}
}

// Acquire gets a generator from the pool, creating one if needed.
// Blocks if all generators are in use. On creation failure the slot is
// returned to the pool so a later Acquire can retry.
func (p *GeneratorPool) Acquire() (*Generator, error) {
	// Fast path: an idle generator is already waiting.
	select {
	case g := <-p.sem:
		return g, nil
	default:
	}

	// Under capacity: mint a new one. Construction happens outside the
	// lock because bringing up a browser is slow.
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		g, err := NewGenerator(p.opts...)
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}

		p.mu.Lock()
		p.generators = append(p.generators, g)
		p.mu.Unlock()

		return g, nil
	}
	p.mu.Unlock()

	// At capacity: wait for a release.
	return <-p.sem, nil
}

// Release returns a generator to the pool. After Close it drops the
// generator instead, since the semaphore channel is already closed.
func (p *GeneratorPool) Release(g *Generator) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	// The send happens outside the lock so a blocked Release cannot wedge
	// a concurrent Close.
	p.sem <- g
}

// Close tears down every generator the pool created. Errors from the
// individual Close calls are joined.
func (p *GeneratorPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	generators := p.generators
	p.mu.Unlock()

	var errs []error
	for _, g := range generators {
		if err := g.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *GeneratorPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the optimal pool size.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	// Explicit value takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
