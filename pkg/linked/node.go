// Package linked provides generic singly and doubly linked lists with positional access.
//
// Both lists own their nodes through `next` links starting at the head. The doubly linked list keeps an extra
// `prev` back-pointer per node and a `tail` pointer; these are used for lookups only and are kept consistent with
// the forward chain on every mutation.
// The lists are not safe for concurrent use; callers sharing a list must guard it with their own lock.
package linked

// singlyNode represents a node in the singly linked list.
type singlyNode[T any] struct {
	next  *singlyNode[T] // Owns the rest of the chain.
	value T
}

// doublyNode represents a node in the doubly linked list.
type doublyNode[T any] struct {
	next *doublyNode[T] // Owns the rest of the chain.
	// prev is a back-pointer used for lookups only; the chain is held alive through `next` links.
	prev  *doublyNode[T]
	value T
}

// detach clears the links of a node that has been taken out of its list.
func (n *doublyNode[T]) detach() {
	n.next = nil
	n.prev = nil
}
