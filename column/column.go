package column

import (
	"fmt"

	"github.com/go-sif/coltable/errors"
)

// DefaultName is the display name of a Column created without one
const DefaultName = "Standard Name"

// node is a single link in a Column's chain
type node[T any] struct {
	data T
	next *node[T]
}

// Column is a named, ordered sequence of values of type T, backed by a singly
// linked chain. Positional operations cost O(position). A Column is not safe
// for concurrent use.
type Column[T any] struct {
	id   string
	name string
	size int
	head *node[T]
}

// New creates an empty Column with the given display name
func New[T any](name string) *Column[T] {
	return &Column[T]{name: name}
}

// NewUnnamed creates an empty Column named DefaultName
func NewUnnamed[T any]() *Column[T] {
	return New[T](DefaultName)
}

// NewWithID creates an empty Column with the given identifier and display name
func NewWithID[T any](id string, name string) *Column[T] {
	return &Column[T]{id: id, name: name}
}

// ID returns the identifier of this Column, if it was assigned one
func (c *Column[T]) ID() string {
	return c.id
}

// SetName replaces the display name of this Column
func (c *Column[T]) SetName(name string) {
	c.name = name
}

// GetName returns the display name of this Column
func (c *Column[T]) GetName() string {
	return c.name
}

// GetSize returns the number of elements in this Column
func (c *Column[T]) GetSize() int {
	return c.size
}

// PushBack appends a value after the last element
func (c *Column[T]) PushBack(v T) {
	if c.head == nil {
		c.head = &node[T]{data: v}
	} else {
		cur := c.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = &node[T]{data: v}
	}
	c.size++
}

// PushHead prepends a value as the new first element
func (c *Column[T]) PushHead(v T) {
	c.head = &node[T]{data: v, next: c.head}
	c.size++
}

// PushIndex inserts a value so that it becomes the element at index, shifting
// later elements back. index may range over [0, GetSize()]; inserting at
// GetSize() appends.
func (c *Column[T]) PushIndex(index int, v T) error {
	if index < 0 || index > c.size {
		return errors.OutOfRangeError{Target: "element", Index: index, Size: c.size + 1}
	}
	if index == 0 {
		c.PushHead(v)
		return nil
	}
	prev, err := c.predecessor(index)
	if err != nil {
		return err
	}
	prev.next = &node[T]{data: v, next: prev.next}
	c.size++
	return nil
}

// DeleteBack removes the last element. It does nothing if the Column is empty.
func (c *Column[T]) DeleteBack() {
	if c.head == nil {
		return
	}
	if c.head.next == nil {
		c.head = nil
	} else {
		cur := c.head
		for cur.next.next != nil {
			cur = cur.next
		}
		cur.next = nil
	}
	c.size--
}

// DeleteHead removes the first element. It does nothing if the Column is empty.
func (c *Column[T]) DeleteHead() {
	if c.head == nil {
		return
	}
	c.head = c.head.next
	c.size--
}

// DeleteIndex removes the element at index, which must lie in [0, GetSize())
func (c *Column[T]) DeleteIndex(index int) error {
	if index < 0 || index >= c.size {
		return errors.OutOfRangeError{Target: "element", Index: index, Size: c.size}
	}
	if index == 0 {
		c.DeleteHead()
		return nil
	}
	prev, err := c.predecessor(index)
	if err != nil {
		return err
	}
	if prev.next == nil {
		return errors.NotFoundError{Target: "element", Index: index}
	}
	prev.next = prev.next.next
	c.size--
	return nil
}

// Clear removes every element from this Column
func (c *Column[T]) Clear() {
	// unlink each node so that outstanding element pointers don't pin the chain
	for c.head != nil {
		next := c.head.next
		c.head.next = nil
		c.head = next
	}
	c.size = 0
}

// At returns a pointer to the element at index, which must lie in [0, GetSize()).
// The pointer aliases the stored value: writes through it are visible to later reads.
func (c *Column[T]) At(index int) (*T, error) {
	if index < 0 || index >= c.size {
		return nil, errors.OutOfRangeError{Target: "element", Index: index, Size: c.size}
	}
	cur := c.head
	for i := 0; i < index && cur != nil; i++ {
		cur = cur.next
	}
	if cur == nil {
		return nil, errors.NotFoundError{Target: "element", Index: index}
	}
	return &cur.data, nil
}

// ForEach iterates over the elements of this Column in order, stopping at the first error
func (c *Column[T]) ForEach(fn func(idx int, v *T) error) error {
	i := 0
	for cur := c.head; cur != nil; cur = cur.next {
		if err := fn(i, &cur.data); err != nil {
			return err
		}
		i++
	}
	return nil
}

// Values returns a copy of the elements of this Column, in order
func (c *Column[T]) Values() []T {
	values := make([]T, 0, c.size)
	for cur := c.head; cur != nil; cur = cur.next {
		values = append(values, cur.data)
	}
	return values
}

// Validate confirms that the chain is acyclic and that its length matches GetSize()
func (c *Column[T]) Validate() error {
	count := 0
	slow, fast := c.head, c.head
	for fast != nil {
		count++
		fast = fast.next
		if fast == nil {
			break
		}
		count++
		fast = fast.next
		slow = slow.next
		if fast == slow {
			return errors.InvariantError{Name: c.name, Reason: "element chain contains a cycle"}
		}
	}
	if count != c.size {
		return errors.InvariantError{
			Name:   c.name,
			Reason: fmt.Sprintf("size %d does not match %d reachable elements", c.size, count),
		}
	}
	return nil
}

// predecessor walks to the node before index. index must be > 0.
func (c *Column[T]) predecessor(index int) (*node[T], error) {
	cur := c.head
	for i := 0; i < index-1 && cur != nil; i++ {
		cur = cur.next
	}
	if cur == nil {
		return nil, errors.NotFoundError{Target: "element", Index: index - 1}
	}
	return cur, nil
}
