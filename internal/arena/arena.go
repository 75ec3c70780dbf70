package arena

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"unsafe"
)

// GrowthFactor is the multiplier applied to the capacity when a full list grows.
const GrowthFactor = 2

var (
	// ErrZeroCapacity is returned by New for a non-positive initial capacity.
	ErrZeroCapacity = errors.New("arena: zero capacity")
	// ErrZeroElement is returned by New for zero-sized element types.
	ErrZeroElement = errors.New("arena: zero-sized element")
	// ErrOverflow is returned when capacity*elementSize does not fit in an int.
	ErrOverflow = errors.New("arena: size overflow")
	// ErrAlloc is returned when the backing storage could not be allocated.
	ErrAlloc = errors.New("arena: allocation failed")
)

// Result reports the outcome of a mutating list operation.
type Result uint8

const (
	// ResultOK means the operation succeeded without moving storage.
	ResultOK Result = iota
	// ResultReallocated means the operation succeeded and the backing storage moved.
	ResultReallocated
	// ResultNullPointer means the list was nil or already destroyed.
	ResultNullPointer
	// ResultOverflow means growing would overflow the size computation.
	ResultOverflow
	// ResultErr means the new storage could not be allocated.
	ResultErr
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultReallocated:
		return "reallocated"
	case ResultNullPointer:
		return "null pointer"
	case ResultOverflow:
		return "overflow"
	case ResultErr:
		return "error"
	default:
		return fmt.Sprintf("Result(%d)", uint8(r))
	}
}

// Succeeded reports whether the element was stored.
func (r Result) Succeeded() bool {
	return r == ResultOK || r == ResultReallocated
}

// List is an append-only growable buffer of T values.
//
// Elements are handed out by value only. A caller that wants to refer to an
// element later keeps its index, never a pointer into the list.
type List[T any] struct {
	data     []T
	elemSize uintptr
}

// New creates a list with room for exactly capacity elements.
func New[T any](capacity int) (*List[T], error) {
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if capacity <= 0 {
		return nil, ErrZeroCapacity
	}
	if elemSize == 0 {
		return nil, ErrZeroElement
	}
	if mulOverflows(uintptr(capacity), elemSize) {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrOverflow, capacity, elemSize)
	}
	data, err := allocate[T](0, capacity)
	if err != nil {
		return nil, err
	}
	return &List[T]{data: data, elemSize: elemSize}, nil
}

// IsValid reports whether the list has live storage.
func (l *List[T]) IsValid() bool {
	return l != nil && l.data != nil && cap(l.data) > 0 && l.elemSize > 0
}

// Len returns the number of stored elements, 0 for an invalid list.
func (l *List[T]) Len() int {
	if !l.IsValid() {
		return 0
	}
	return len(l.data)
}

// Cap returns the current capacity, 0 for an invalid list.
func (l *List[T]) Cap() int {
	if !l.IsValid() {
		return 0
	}
	return cap(l.data)
}

// Push appends item, doubling the storage when the list is full.
func (l *List[T]) Push(item T) Result {
	if !l.IsValid() {
		return ResultNullPointer
	}
	res := ResultOK
	if len(l.data) == cap(l.data) {
		if r := l.grow(); r != ResultOK {
			return r
		}
		res = ResultReallocated
	}
	l.data = append(l.data, item)
	return res
}

func (l *List[T]) grow() Result {
	oldCap := uintptr(cap(l.data))
	if mulOverflows(oldCap, GrowthFactor) {
		return ResultOverflow
	}
	newCap := oldCap * GrowthFactor
	if mulOverflows(newCap, l.elemSize) {
		return ResultOverflow
	}
	data, err := allocate[T](len(l.data), int(newCap))
	if err != nil {
		return ResultErr
	}
	copy(data, l.data)
	l.data = data
	return ResultOK
}

// Get returns a copy of the element at index i.
func (l *List[T]) Get(i int) (T, bool) {
	var zero T
	if !l.IsValid() || i < 0 || i >= len(l.data) {
		return zero, false
	}
	return l.data[i], true
}

// Front returns a copy of the first element.
func (l *List[T]) Front() (T, bool) {
	return l.Get(0)
}

// Back returns a copy of the last element.
func (l *List[T]) Back() (T, bool) {
	return l.Get(l.Len() - 1)
}

// All iterates over index/value pairs in insertion order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.Len(); i++ {
			if !yield(i, l.data[i]) {
				return
			}
		}
	}
}

// Destroy releases the storage. Destroying twice returns ResultNullPointer.
func (l *List[T]) Destroy() Result {
	if !l.IsValid() {
		return ResultNullPointer
	}
	l.data = nil
	l.elemSize = 0
	return ResultOK
}

func mulOverflows(a, b uintptr) bool {
	if a == 0 || b == 0 {
		return false
	}
	return a > uintptr(math.MaxInt)/b
}

// allocate recovers the runtime panic make raises for an impossible size.
func allocate[T any](length, capacity int) (data []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = fmt.Errorf("%w: %v", ErrAlloc, r)
		}
	}()
	return make([]T, length, capacity), nil
}
