package loctok

import "sync"

// counterPool is a mutex-guarded stack of reusable counters. acquire pops an
// idle instance or constructs a fresh one, so workers never block on each
// other beyond the stack operation itself. A released counter must not be used
// again until re-acquired.
type counterPool struct {
	mu    sync.Mutex
	idle  []Counter
	newFn func() (Counter, error)
}

// newCounterPool constructs the first counter eagerly so a broken backend
// (bad encoding, unreadable tokenizer file) surfaces before any traversal.
func newCounterPool(newFn func() (Counter, error)) (*counterPool, error) {
	first, err := newFn()
	if err != nil {
		return nil, err
	}
	return &counterPool{idle: []Counter{first}, newFn: newFn}, nil
}

func (p *counterPool) acquire() (Counter, error) {
	p.mu.Lock()
	if n := len(p.idle); n > 0 {
		c := p.idle[n-1]
		p.idle = p.idle[:n-1]
		p.mu.Unlock()
		return c, nil
	}
	p.mu.Unlock()
	return p.newFn()
}

func (p *counterPool) release(c Counter) {
	p.mu.Lock()
	p.idle = append(p.idle, c)
	p.mu.Unlock()
}
