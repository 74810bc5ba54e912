package dynarray

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants asserts the buffer bookkeeping against a model slice.
func checkInvariants(t *testing.T, a *Array[int], model []int) {
	t.Helper()

	require.GreaterOrEqual(t, a.size, 0)
	require.LessOrEqual(t, a.size, len(a.buf))
	require.Equal(t, len(model), a.size)

	if len(a.buf) == 0 {
		require.Nil(t, a.buf, "zero capacity must not hold storage")
	}

	require.True(t, slices.Equal(model, a.buf[:a.size]), "live %v, model %v", a.buf[:a.size], model)
	for i := a.size; i < len(a.buf); i++ {
		require.Zero(t, a.buf[i], "spare slot %d still holds a value", i)
	}
}

func TestRandomOps_MatchModel(t *testing.T) {
	t.Parallel()

	for _, seed := range []uint64{1, 2, 3, 42} {
		r := rand.New(rand.NewPCG(seed, seed*7+1))

		var a Array[int]
		var model []int

		for step := 0; step < 2000; step++ {
			// values start at 1 so a leaked element is never mistaken for a zero slot
			v := r.IntN(1000) + 1

			switch op := r.IntN(8); {
			case op <= 2:
				a.PushBack(v)
				model = append(model, v)
			case op == 3:
				i := r.IntN(len(model) + 1)
				a.Insert(i, v)
				model = append(model[:i], append([]int{v}, model[i:]...)...)
			case op == 4 && len(model) > 0:
				a.PopBack()
				model = model[:len(model)-1]
				require.GreaterOrEqual(t, len(a.buf), max(1, a.size))
			case op == 5 && len(model) > 0:
				i := r.IntN(len(model))
				a.Erase(i)
				model = append(model[:i], model[i+1:]...)
				require.GreaterOrEqual(t, len(a.buf), max(1, a.size))
			case op == 6:
				prev := len(a.buf)
				n := r.IntN(64)
				a.Reserve(n)
				require.Equal(t, max(n, prev), len(a.buf))
			case op == 7:
				if r.IntN(2) == 0 {
					a.Shrink()
				} else {
					prev := len(a.buf)
					a.ShrinkToFit()
					if prev > 0 {
						require.Equal(t, max(1, a.size), len(a.buf))
					}
				}
			}

			checkInvariants(t, &a, model)
		}
	}
}

func TestRealloc_ZeroReleasesStorage(t *testing.T) {
	t.Parallel()

	a := New[int](WithCapacity(4))
	require.Len(t, a.buf, 4)

	a.realloc(0, reasonShrink)
	require.Nil(t, a.buf)
	require.Equal(t, 0, a.Cap())
}

func TestRealloc_LeavesOldBufferIntact(t *testing.T) {
	t.Parallel()

	a := New[int]()
	for i := 1; i <= 4; i++ {
		a.PushBack(i)
	}
	old := a.buf

	a.Reserve(10)
	require.Equal(t, []int{1, 2, 3, 4}, old)
	require.Equal(t, []int{1, 2, 3, 4}, a.buf[:a.size])
	require.NotSame(t, &old[0], &a.buf[0])
}

func TestErase_ZeroesVacatedSlot(t *testing.T) {
	t.Parallel()

	a := New[*int]()
	x, y := 1, 2
	a.PushBack(&x)
	a.PushBack(&y)
	a.Erase(0)

	require.Equal(t, 1, a.size)
	require.Same(t, &y, a.buf[0])
	require.Nil(t, a.buf[1])
}
