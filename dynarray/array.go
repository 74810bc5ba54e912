package dynarray

import "go.uber.org/zap"

// Reasons attached to reallocation log entries.
const (
	reasonGrow        = "grow"
	reasonShrink      = "shrink"
	reasonReserve     = "reserve"
	reasonShrinkToFit = "shrink_to_fit"
)

// Array is a contiguous, resizable sequence of T.
//
// The zero value is an empty array with no storage and is ready to use.
type Array[T any] struct {
	// buf is the backing storage; len(buf) is the capacity.
	// It is nil whenever the capacity is 0.
	buf  []T
	size int
	log  *zap.Logger
}

// New returns an empty array configured by opts.
func New[T any](opts ...Option) *Array[T] {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	a := &Array[T]{log: o.logger}
	if o.capacity > 0 {
		a.Reserve(o.capacity)
	}
	return a
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.buf) }

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.size }

// Empty reports whether the array holds no elements.
func (a *Array[T]) Empty() bool { return a.size == 0 }

// At returns the element at index i.
//
// It returns an IndexOutOfRangeError when i < 0 or i >= Len().
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, IndexOutOfRangeError{Index: i, Bound: a.size}
	}
	return a.buf[i], nil
}

// AtRef is the mutable form of At.
func (a *Array[T]) AtRef(i int) (*T, error) {
	if i < 0 || i >= a.size {
		return nil, IndexOutOfRangeError{Index: i, Bound: a.size}
	}
	return &a.buf[i], nil
}

// Get returns the element at index i. The caller guarantees 0 <= i < Len().
func (a *Array[T]) Get(i int) T {
	a.mustIndex(i)
	return a.buf[i]
}

// Ref returns a pointer to the element at index i.
// The caller guarantees 0 <= i < Len().
//
// The pointer stays valid until the next operation that changes Cap().
func (a *Array[T]) Ref(i int) *T {
	a.mustIndex(i)
	return &a.buf[i]
}

// Set overwrites the element at index i. The caller guarantees 0 <= i < Len().
func (a *Array[T]) Set(i int, v T) {
	a.mustIndex(i)
	a.buf[i] = v
}

// Front returns the first element. The caller guarantees Len() > 0.
func (a *Array[T]) Front() T {
	a.mustNotEmpty()
	return a.buf[0]
}

// FrontRef returns a pointer to the first element.
func (a *Array[T]) FrontRef() *T {
	a.mustNotEmpty()
	return &a.buf[0]
}

// Back returns the last element. The caller guarantees Len() > 0.
func (a *Array[T]) Back() T {
	a.mustNotEmpty()
	return a.buf[a.size-1]
}

// BackRef returns a pointer to the last element.
func (a *Array[T]) BackRef() *T {
	a.mustNotEmpty()
	return &a.buf[a.size-1]
}

// PushBack appends v, growing the buffer first when it is full.
func (a *Array[T]) PushBack(v T) {
	if a.size == len(a.buf) {
		a.grow()
	}
	a.buf[a.size] = v
	a.size++
}

// PopBack removes the last element. The caller guarantees Len() > 0.
//
// Capacity may shrink afterwards (see Shrink).
func (a *Array[T]) PopBack() {
	a.mustNotEmpty()
	a.size--
	var zero T
	a.buf[a.size] = zero
	a.Shrink()
}

// Insert places v at index i and shifts the elements at [i, Len()) one slot
// to the right. The caller guarantees 0 <= i <= Len(); i == Len() appends.
func (a *Array[T]) Insert(i int, v T) {
	if i < 0 || i > a.size {
		panic(IndexOutOfRangeError{Index: i, Bound: a.size + 1})
	}
	if a.size == len(a.buf) {
		a.grow()
	}
	copy(a.buf[i+1:a.size+1], a.buf[i:a.size])
	a.buf[i] = v
	a.size++
}

// Erase removes the element at index i and shifts the elements at
// (i, Len()) one slot to the left. The caller guarantees 0 <= i < Len().
//
// Capacity may shrink afterwards (see Shrink).
func (a *Array[T]) Erase(i int) {
	a.mustIndex(i)
	copy(a.buf[i:a.size-1], a.buf[i+1:a.size])
	a.size--
	var zero T
	a.buf[a.size] = zero
	a.Shrink()
}

// Reserve ensures Cap() >= minimum. When the buffer must grow it is resized
// to exactly minimum slots. Reserve never reduces capacity.
func (a *Array[T]) Reserve(minimum int) {
	if len(a.buf) >= minimum {
		return
	}
	a.realloc(minimum, reasonReserve)
}

// Shrink halves the capacity (never below 1) once Len() <= Cap()/4.
//
// PopBack and Erase call it automatically.
func (a *Array[T]) Shrink() {
	c := len(a.buf)
	if c == 0 || a.size > c/4 {
		return
	}
	next := max(1, c/2)
	if next == c {
		return
	}
	a.realloc(next, reasonShrink)
}

// ShrinkToFit drops the capacity to max(1, Len()).
//
// An array that never allocated keeps Cap() == 0.
func (a *Array[T]) ShrinkToFit() {
	c := len(a.buf)
	if c <= a.size {
		return
	}
	next := max(1, a.size)
	if next == c {
		return
	}
	a.realloc(next, reasonShrinkToFit)
}

// Values returns a copy of the live elements in order. It is never nil.
func (a *Array[T]) Values() []T {
	out := make([]T, a.size)
	copy(out, a.buf[:a.size])
	return out
}

// Clone returns an independent copy with the same capacity, elements and logger.
func (a *Array[T]) Clone() *Array[T] {
	if a == nil {
		return nil
	}
	cp := &Array[T]{size: a.size, log: a.log}
	if len(a.buf) > 0 {
		cp.buf = make([]T, len(a.buf))
		copy(cp.buf, a.buf[:a.size])
	}
	return cp
}

func (a *Array[T]) grow() {
	a.realloc(max(1, 2*len(a.buf)), reasonGrow)
}

// realloc moves the live elements into a fresh buffer of n slots.
// Callers guarantee n >= a.size and n != len(a.buf).
func (a *Array[T]) realloc(n int, reason string) {
	from := len(a.buf)

	var next []T
	if n > 0 {
		next = make([]T, n)
		copy(next, a.buf[:a.size])
	}
	a.buf = next

	if a.log == nil {
		return
	}
	if ce := a.log.Check(zap.DebugLevel, "dynarray: realloc"); ce != nil {
		ce.Write(
			zap.String("reason", reason),
			zap.Int("from", from),
			zap.Int("to", n),
			zap.Int("size", a.size),
		)
	}
}

func (a *Array[T]) mustIndex(i int) {
	if i < 0 || i >= a.size {
		panic(IndexOutOfRangeError{Index: i, Bound: a.size})
	}
}

func (a *Array[T]) mustNotEmpty() {
	if a.size == 0 {
		panic(ErrEmpty)
	}
}
