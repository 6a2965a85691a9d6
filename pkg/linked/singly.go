package linked

import (
	"fmt"
	"iter"
)

// Singly is a singly linked list holding only a reference to its first node.
// The zero value is an empty list ready to use.
type Singly[T comparable] struct {
	head *singlyNode[T]
}

var _ fmt.Stringer = (*Singly[int])(nil)

// NewSingly returns an empty singly linked list.
func NewSingly[T comparable]() *Singly[T] {
	return &Singly[T]{}
}

// PushFront adds a new value to the front of the list.
func (l *Singly[T]) PushFront(v T) {
	l.head = &singlyNode[T]{value: v, next: l.head}
}

// PushBack adds a new value to the back of the list. It walks the whole list to find the last node.
func (l *Singly[T]) PushBack(v T) {
	n := &singlyNode[T]{value: v}
	if l.head == nil { // List was empty.
		l.head = n
		return
	}
	last := l.head
	for last.next != nil {
		last = last.next
	}
	last.next = n
}

// PopFront removes the first node and returns its value.
func (l *Singly[T]) PopFront() (T, error) {
	if l.head == nil {
		return *new(T), ErrEmptyList
	}
	n := l.head
	l.head = n.next
	n.next = nil
	return n.value, nil
}

// PopBack removes the last node and returns its value.
func (l *Singly[T]) PopBack() (T, error) {
	if l.head == nil {
		return *new(T), ErrEmptyList
	}
	if l.head.next == nil { // Single node.
		return l.PopFront()
	}
	beforeLast := l.head
	for beforeLast.next.next != nil {
		beforeLast = beforeLast.next
	}
	last := beforeLast.next
	beforeLast.next = nil
	return last.value, nil
}

// nodeAt returns the node at the given position or nil if the list is shorter than that.
func (l *Singly[T]) nodeAt(index int) *singlyNode[T] {
	if index < 0 {
		return nil
	}
	n := l.head
	for i := 0; i < index && n != nil; i++ {
		n = n.next
	}
	return n
}

// Get returns the value at the given 0-based position.
func (l *Singly[T]) Get(index int) (T, error) {
	n := l.nodeAt(index)
	if n == nil {
		return *new(T), fmt.Errorf("%w: get at %d", ErrIndexOutOfRange, index)
	}
	return n.value, nil
}

// Insert puts `v` before the current occupant of `index`. Valid positions are [0, Size()]; inserting at Size()
// appends to the list.
func (l *Singly[T]) Insert(index int, v T) error {
	if index == 0 {
		l.PushFront(v)
		return nil
	}
	prev := l.nodeAt(index - 1)
	if prev == nil {
		return fmt.Errorf("%w: insert at %d", ErrIndexOutOfRange, index)
	}
	prev.next = &singlyNode[T]{value: v, next: prev.next}
	return nil
}

// Remove takes out the node at the given position and returns its value.
func (l *Singly[T]) Remove(index int) (T, error) {
	if l.head == nil {
		return *new(T), fmt.Errorf("%w: remove at %d", ErrEmptyList, index)
	}
	if index == 0 {
		return l.PopFront()
	}
	prev := l.nodeAt(index - 1)
	if prev == nil || prev.next == nil {
		return *new(T), fmt.Errorf("%w: remove at %d", ErrIndexOutOfRange, index)
	}
	target := prev.next
	prev.next = target.next
	target.next = nil
	return target.value, nil
}

// Size counts the nodes of the list.
func (l *Singly[T]) Size() int {
	return count(l.values())
}

// Empty reports whether the list has no nodes.
func (l *Singly[T]) Empty() bool {
	return l.head == nil
}

// Find returns the position of the first value equal to `v`.
func (l *Singly[T]) Find(v T) (int, bool /*found*/) {
	return indexOf(l.values(), v)
}

// String renders the list as `[v1, v2, ..., vn]`.
func (l *Singly[T]) String() string {
	return render(l.values())
}

func (l *Singly[T]) values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}
