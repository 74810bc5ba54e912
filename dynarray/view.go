package dynarray

// View is the read-only surface of an Array.
type View[T any] interface {
	Len() int
	Cap() int
	Empty() bool
	At(i int) (T, error)
	Get(i int) T
	Front() T
	Back() T
	Values() []T
}

// readOnly exposes only the non-mutating methods of an Array.
type readOnly[T any] struct{ a *Array[T] }

// View returns a read-only handle backed by a. Later mutations of a are
// visible through the handle.
func (a *Array[T]) View() View[T] { return readOnly[T]{a: a} }

func (r readOnly[T]) Len() int            { return r.a.Len() }
func (r readOnly[T]) Cap() int            { return r.a.Cap() }
func (r readOnly[T]) Empty() bool         { return r.a.Empty() }
func (r readOnly[T]) At(i int) (T, error) { return r.a.At(i) }
func (r readOnly[T]) Get(i int) T         { return r.a.Get(i) }
func (r readOnly[T]) Front() T            { return r.a.Front() }
func (r readOnly[T]) Back() T             { return r.a.Back() }
func (r readOnly[T]) Values() []T         { return r.a.Values() }
