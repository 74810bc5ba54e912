package dynarray_test

import (
	"testing"

	"github.com/sghaida/dynarray/dynarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_ReadsThrough(t *testing.T) {
	t.Parallel()

	a := filled(3)
	v := a.View()

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 4, v.Cap())
	assert.False(t, v.Empty())
	assert.Equal(t, 0, v.Front())
	assert.Equal(t, 2, v.Back())
	assert.Equal(t, []int{0, 1, 2}, v.Values())

	got, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	// mutations through the owning handle are visible
	a.PushBack(3)
	a.Set(0, 10)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 10, v.Front())
	assert.Equal(t, 3, v.Back())
}

func TestView_NotMutable(t *testing.T) {
	t.Parallel()

	v := filled(2).View()

	_, ok := v.(*dynarray.Array[int])
	assert.False(t, ok)

	_, ok = v.(interface{ PushBack(int) })
	assert.False(t, ok)

	_, ok = v.(interface{ Ref(int) *int })
	assert.False(t, ok)
}

func TestView_ValuesIsCopy(t *testing.T) {
	t.Parallel()

	a := filled(2)
	vals := a.View().Values()
	vals[1] = 100
	assert.Equal(t, 1, a.Get(1))
}
