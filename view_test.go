package poolist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOnly(t *testing.T) {
	l := From([]int{1, 2, 3})
	defer l.Release()

	v := l.ReadOnly()

	assert.Equal(t, 3, v.Len())

	got, err := v.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	assert.Equal(t, 2, v.FindIndex(func(x int) bool { return x == 3 }))
	assert.True(t, v.TrueForAll(func(x int) bool { return x > 0 }))
	assert.Equal(t, []int{1, 2, 3}, v.ToSlice())
}

func TestReadOnly_SeesLiveMutations(t *testing.T) {
	l := From([]int{1})
	defer l.Release()

	v := l.ReadOnly()
	require.NoError(t, l.Add(2))

	assert.Equal(t, 2, v.Len(), "the view copies nothing")
}

func TestReadOnly_Iterator(t *testing.T) {
	l := From([]int{1, 2})
	defer l.Release()

	it := l.ReadOnly().Iterator()
	var got []int
	for it.Next() {
		got = append(got, it.Value())
	}

	require.NoError(t, it.Err())
	assert.Equal(t, []int{1, 2}, got)
}

func TestReadOnly_All(t *testing.T) {
	l := From([]int{4, 5})
	defer l.Release()

	var got []int
	for _, x := range l.ReadOnly().All() {
		got = append(got, x)
	}
	assert.Equal(t, []int{4, 5}, got)
}
