package linked

import (
	"fmt"
	"iter"

	"github.com/nobletooth/chain/pkg/utils"
)

// Doubly is a doubly linked list. Nodes are owned through the `next` chain starting at head; `prev` links and the
// tail pointer only speed up lookups from the back.
// The zero value is an empty list ready to use.
type Doubly[T comparable] struct {
	head *doublyNode[T]
	tail *doublyNode[T]
}

var _ fmt.Stringer = (*Doubly[int])(nil)

// NewDoubly returns an empty doubly linked list.
func NewDoubly[T comparable]() *Doubly[T] {
	return &Doubly[T]{}
}

// PushFront adds a new value to the front of the list.
func (l *Doubly[T]) PushFront(v T) {
	n := &doublyNode[T]{value: v, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else { // List was empty.
		l.tail = n
	}
	l.head = n
}

// PushBack adds a new value to the back of the list.
func (l *Doubly[T]) PushBack(v T) {
	n := &doublyNode[T]{value: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		// List was empty.
		l.head = n
	}
	l.tail = n
}

// PopFront removes the first node and returns its value.
func (l *Doubly[T]) PopFront() (T, error) {
	if l.head == nil {
		return *new(T), ErrEmptyList
	}
	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else { // List is empty now.
		l.tail = nil
	}
	n.detach()
	return n.value, nil
}

// PopBack removes the last node and returns its value.
func (l *Doubly[T]) PopBack() (T, error) {
	n := l.tail
	if n == nil {
		return *new(T), ErrEmptyList
	}
	l.tail = n.prev
	if n.prev != nil {
		if n.prev.next != n {
			utils.RaiseInvariant("linked", "inconsistent_next_link",
				"Tail predecessor doesn't point at the tail.")
		}
		n.prev.next = nil
	} else {
		if l.head != n {
			utils.RaiseInvariant("linked", "missing_prev_link",
				"Tail has no predecessor but isn't the head.")
		}
		// List is empty now.
		l.head = nil
	}
	n.detach()
	return n.value, nil
}

// seek walks `index` steps from the head. It returns the node found there and its predecessor in the `next` chain.
// `at` is nil when the list ends exactly at `index`; `ok` is false when the list ends before reaching it.
// Back-links found along the way that disagree with the forward chain are reported and repaired.
func (l *Doubly[T]) seek(index int) (before, at *doublyNode[T], ok bool) {
	if index < 0 {
		return nil, nil, false
	}
	at = l.head
	for i := 0; i < index; i++ {
		if at == nil {
			return nil, nil, false
		}
		before, at = at, at.next
	}
	if at != nil && at.prev != before {
		utils.RaiseInvariant("linked", "inconsistent_prev_link",
			"Node back-link doesn't match its predecessor.", "index", index)
		at.prev = before
	}
	if at == nil && l.tail != before {
		utils.RaiseInvariant("linked", "stale_tail",
			"Tail doesn't point at the last node.", "index", index)
		l.tail = before
	}
	return before, at, true
}

// Get returns the value at the given 0-based position.
func (l *Doubly[T]) Get(index int) (T, error) {
	_, at, ok := l.seek(index)
	if !ok || at == nil {
		return *new(T), fmt.Errorf("%w: get at %d", ErrIndexOutOfRange, index)
	}
	return at.value, nil
}

// Insert puts `v` before the current occupant of `index`. Valid positions are [0, Size()]; inserting at Size()
// appends to the list.
func (l *Doubly[T]) Insert(index int, v T) error {
	if index == 0 {
		l.PushFront(v)
		return nil
	}
	before, at, ok := l.seek(index)
	if !ok {
		return fmt.Errorf("%w: insert at %d", ErrIndexOutOfRange, index)
	}
	if at == nil { // Ran exactly past the last node.
		l.PushBack(v)
		return nil
	}
	// Splice the new node between `before` and `at`; index > 0 so `before` is never nil here.
	n := &doublyNode[T]{value: v, prev: before, next: at}
	before.next = n
	at.prev = n
	return nil
}

// Remove takes out the node at the given position and returns its value.
func (l *Doubly[T]) Remove(index int) (T, error) {
	if l.head == nil {
		return *new(T), fmt.Errorf("%w: remove at %d", ErrEmptyList, index)
	}
	if index == 0 {
		return l.PopFront()
	}
	before, at, ok := l.seek(index)
	if !ok || at == nil {
		return *new(T), fmt.Errorf("%w: remove at %d", ErrIndexOutOfRange, index)
	}
	before.next = at.next
	if at.next != nil {
		at.next.prev = before
	} else {
		// Node was the tail.
		l.tail = before
	}
	at.detach()
	return at.value, nil
}

// Size counts the nodes of the list.
func (l *Doubly[T]) Size() int {
	return count(l.values())
}

// Empty reports whether the list has no nodes.
func (l *Doubly[T]) Empty() bool {
	return l.head == nil
}

// Find returns the position of the first value equal to `v`.
func (l *Doubly[T]) Find(v T) (int, bool /*found*/) {
	return indexOf(l.values(), v)
}

// String renders the list as `[v1, v2, ..., vn]`.
func (l *Doubly[T]) String() string {
	return render(l.values())
}

func (l *Doubly[T]) values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
