package search

import "github.com/zyedidia/generic/heap"

type frontierEntry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// frontier pops the lowest priority first. Equal priorities pop in insertion
// order so searches are deterministic.
type frontier[T any] struct {
	h   *heap.Heap[frontierEntry[T]]
	seq uint64
}

func newFrontier[T any]() *frontier[T] {
	return &frontier[T]{
		h: heap.New[frontierEntry[T]](func(a, b frontierEntry[T]) bool {
			if a.priority != b.priority {
				return a.priority < b.priority
			}
			return a.seq < b.seq
		}),
	}
}

func (f *frontier[T]) push(item T, priority float64) {
	f.h.Push(frontierEntry[T]{item: item, priority: priority, seq: f.seq})
	f.seq++
}

func (f *frontier[T]) pop() (T, float64, bool) {
	e, ok := f.h.Pop()
	if !ok {
		var zero T
		return zero, 0, false
	}
	return e.item, e.priority, true
}

func (f *frontier[T]) len() int {
	return f.h.Size()
}
