package pagetree

import "sync"

// Locked serializes access to a Tree with a reader-writer lock: one Insert
// at a time, any number of concurrent lookups while no Insert runs. Lookups
// return copies, since entries may move as soon as the lock is released.
type Locked[K Key[K]] struct {
	mu   sync.RWMutex
	tree *Tree[K]
}

// NewLocked wraps tree. The caller must stop using tree directly.
func NewLocked[K Key[K]](tree *Tree[K]) *Locked[K] {
	return &Locked[K]{tree: tree}
}

func (l *Locked[K]) Insert(key K) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Insert(key)
}

// Search returns a copy of the entry equal to target.
func (l *Locked[K]) Search(target K) (K, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	k, err := l.tree.Search(target)
	if err != nil {
		var zero K
		return zero, err
	}
	return *k, nil
}

// Range returns copies of the entries k with lo <= k < hi, in key order.
func (l *Locked[K]) Range(lo, hi K) ([]K, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seq, err := l.tree.Range(lo, hi)
	if err != nil {
		return nil, err
	}
	var out []K
	for k := range seq {
		out = append(out, *k)
	}
	return out, nil
}

func (l *Locked[K]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Len()
}

// Verify checks the wrapped tree's invariants under the read lock.
func (l *Locked[K]) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Verify()
}
