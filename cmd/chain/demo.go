package main

import (
	"fmt"
	"io"

	"github.com/nobletooth/chain/pkg/linked"
)

// printer writes formatted lines and keeps the first write error.
type printer struct {
	out io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.out, format, args...)
	}
}

// runSinglyDemo builds a singly linked list of ints and prints it after every change.
func runSinglyDemo(out io.Writer) error {
	p := &printer{out: out}
	list := linked.NewSingly[int]()
	list.PushFront(3)
	list.PushBack(5)
	list.PushFront(1)
	p.printf("Singly Linked List: %v\n", list)
	p.printf("Size: %d\n", list.Size())
	first, err := list.Get(0)
	if err != nil {
		return fmt.Errorf("failed to get the first element: %w", err)
	}
	p.printf("Element at index 0: %d\n", first)

	if err := list.Insert(2, 4); err != nil {
		return fmt.Errorf("failed to insert: %w", err)
	}
	p.printf("Singly Linked List after insertion: %v\n", list)

	if _, err := list.Remove(1); err != nil {
		return fmt.Errorf("failed to remove: %w", err)
	}
	p.printf("Singly Linked List after removal: %v\n", list)
	if index, found := list.Find(4); found {
		p.printf("Element 4 found at index: %d\n", index)
	}

	front, err := list.PopFront()
	if err != nil {
		return fmt.Errorf("failed to pop front: %w", err)
	}
	p.printf("Popped front element: %d\n", front)
	p.printf("Singly Linked List after pop_front: %v\n", list)
	back, err := list.PopBack()
	if err != nil {
		return fmt.Errorf("failed to pop back: %w", err)
	}
	p.printf("Popped back element: %d\n", back)
	p.printf("Singly Linked List after pop_back: %v\n", list)
	return p.err
}

// runDoublyDemo builds a doubly linked list of strings from both ends and prints it.
func runDoublyDemo(out io.Writer) error {
	p := &printer{out: out}
	list := linked.NewDoubly[string]()
	list.PushFront("banana")
	list.PushBack("apple")
	list.PushFront("cherry")
	p.printf("Doubly Linked List: %v\n", list)
	return p.err
}
