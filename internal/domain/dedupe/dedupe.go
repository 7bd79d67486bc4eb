// Package dedupe tracks applied match result ids so a result is never
// applied to the career twice.
package dedupe

import (
	"context"
	"sync"
)

// DefaultMaxSize holds several seasons of a full league.
const DefaultMaxSize = 10_000

// Deduper records seen result IDs to ensure at-most-once application.
type Deduper interface {
	// SeenAndRecord atomically checks if id was seen and records it if not.
	// Returns true if id was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord forgets id so that a result whose application failed can be
	// applied again.
	Unrecord(ctx context.Context, id string)

	// Seed records ids restored from a save without reporting them.
	Seed(ctx context.Context, ids []string)

	// IDs returns the recorded ids, oldest first.
	IDs() []string

	Size() int64
}

// inMemoryDeduper keeps ids in insertion order in a ring and evicts the
// oldest once maxSize is reached. maxSize <= 0 means unbounded.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	order   []string // ring buffer of ids, valid between head and head+count
	head    int
	count   int
	maxSize int
}

// NewInMemoryDeduper creates a new in-memory deduper.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]struct{})
	if d.maxSize > 0 {
		d.order = make([]string, d.maxSize)
	}
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[id]; ok {
		return true
	}
	d.record(id)
	return false
}

func (d *inMemoryDeduper) Seed(_ context.Context, ids []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range ids {
		if _, ok := d.seen[id]; !ok {
			d.record(id)
		}
	}
}

// record must be called with mu held.
func (d *inMemoryDeduper) record(id string) {
	d.seen[id] = struct{}{}
	if d.maxSize <= 0 {
		d.order = append(d.order, id)
		d.count++
		return
	}
	if d.count == d.maxSize {
		delete(d.seen, d.order[d.head])
		d.head = (d.head + 1) % d.maxSize
		d.count--
	}
	d.order[(d.head+d.count)%d.maxSize] = id
	d.count++
}

func (d *inMemoryDeduper) Unrecord(_ context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[id]; !ok {
		return
	}
	delete(d.seen, id)

	// Compact the remaining ids, preserving order.
	ids := d.snapshot()
	d.head, d.count = 0, 0
	if d.maxSize <= 0 {
		d.order = d.order[:0]
	}
	for _, other := range ids {
		if other == id {
			continue
		}
		if d.maxSize <= 0 {
			d.order = append(d.order, other)
		} else {
			d.order[d.count] = other
		}
		d.count++
	}
}

func (d *inMemoryDeduper) IDs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot()
}

// snapshot must be called with mu held.
func (d *inMemoryDeduper) snapshot() []string {
	out := make([]string, 0, d.count)
	for i := 0; i < d.count; i++ {
		if d.maxSize <= 0 {
			out = append(out, d.order[i])
		} else {
			out = append(out, d.order[(d.head+i)%d.maxSize])
		}
	}
	return out
}

func (d *inMemoryDeduper) Size() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int64(d.count)
}
