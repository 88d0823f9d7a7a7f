package arena

import "github.com/kamstrup/intmap"

// EntityID is a stable handle to a pooled entity. IDs are never reused
// within a session.
type EntityID uint32

// Entity is anything a Pool can hold.
type Entity interface {
	IsAlive() bool
}

type poolEntry[T Entity] struct {
	id  EntityID
	val T
}

// Pool stores entities in spawn order and reclaims dead ones in bulk.
// Entities killed during a frame stay in place (skipped by Each) until the
// next Reclaim, so iteration never observes a shrinking slice.
type Pool[T Entity] struct {
	entries []poolEntry[T]
	index   *intmap.Map[EntityID, int]
	nextID  EntityID
}

// NewPool creates a pool with room for capacity entities.
func NewPool[T Entity](capacity int) *Pool[T] {
	return &Pool[T]{
		entries: make([]poolEntry[T], 0, capacity),
		index:   intmap.New[EntityID, int](capacity),
		nextID:  1,
	}
}

// Spawn appends an entity and returns its id. Entities spawned during Each
// are not visited by that Each call.
func (p *Pool[T]) Spawn(v T) EntityID {
	id := p.nextID
	p.nextID++
	p.index.Put(id, len(p.entries))
	p.entries = append(p.entries, poolEntry[T]{id: id, val: v})
	return id
}

// Get returns the entity with the given id, dead or alive, until it is
// reclaimed.
func (p *Pool[T]) Get(id EntityID) (T, bool) {
	i, ok := p.index.Get(id)
	if !ok {
		var zero T
		return zero, false
	}
	return p.entries[i].val, true
}

// Each calls fn for every alive entity in spawn order. Returning false stops
// the iteration.
func (p *Pool[T]) Each(fn func(id EntityID, v T) bool) {
	n := len(p.entries)
	for i := 0; i < n; i++ {
		e := p.entries[i]
		if !e.val.IsAlive() {
			continue
		}
		if !fn(e.id, e.val) {
			return
		}
	}
}

// Reclaim drops dead entities, compacting storage in place, and returns how
// many were removed.
func (p *Pool[T]) Reclaim() int {
	kept := 0
	for _, e := range p.entries {
		if !e.val.IsAlive() {
			p.index.Del(e.id)
			continue
		}
		p.index.Put(e.id, kept)
		p.entries[kept] = e
		kept++
	}

	removed := len(p.entries) - kept
	var zero poolEntry[T]
	for i := kept; i < len(p.entries); i++ {
		p.entries[i] = zero
	}
	p.entries = p.entries[:kept]
	return removed
}

// Len returns the number of stored entities, including dead ones not yet
// reclaimed.
func (p *Pool[T]) Len() int {
	return len(p.entries)
}

// AliveCount returns the number of alive entities.
func (p *Pool[T]) AliveCount() int {
	n := 0
	for _, e := range p.entries {
		if e.val.IsAlive() {
			n++
		}
	}
	return n
}

// Clear removes every entity. IDs keep increasing.
func (p *Pool[T]) Clear() {
	clear(p.entries)
	p.entries = p.entries[:0]
	p.index = intmap.New[EntityID, int](cap(p.entries))
}
