package poolist

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_AddSlice(t *testing.T) {
	l := New[int]()
	defer l.Release()

	require.NoError(t, l.AddSlice([]int{1, 2, 3}))
	require.NoError(t, l.AddSlice(nil))
	require.NoError(t, l.AddSlice([]int{4}))

	assert.Equal(t, []int{1, 2, 3, 4}, l.ToSlice())
}

func TestList_AddSliceReservesOnce(t *testing.T) {
	p := &trackingPool[int]{}
	l := New[int](WithPool[int](p))
	defer l.Release()

	require.NoError(t, l.AddSlice(make([]int, 1000)))

	assert.Equal(t, 1, p.rents, "a known-length batch reserves capacity once")
}

func TestList_InsertSlice(t *testing.T) {
	l := From([]int{1, 5})
	defer l.Release()

	require.NoError(t, l.InsertSlice(1, []int{2, 3, 4}))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.ToSlice())

	require.ErrorIs(t, l.InsertSlice(9, []int{0}), ErrIndexOutOfRange)
	require.ErrorIs(t, l.InsertSlice(-1, []int{0}), ErrIndexOutOfRange)
}

func TestList_InsertListSelf(t *testing.T) {
	l := From([]int{1, 2, 3})
	defer l.Release()

	require.NoError(t, l.InsertList(0, l))

	assert.Equal(t, 6, l.Len())
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, l.ToSlice())
}

func TestList_InsertListSelfMidSequence(t *testing.T) {
	l := From([]int{1, 2, 3})
	defer l.Release()

	require.NoError(t, l.InsertList(1, l))

	assert.Equal(t, []int{1, 1, 2, 3, 2, 3}, l.ToSlice())
}

func TestList_InsertListSelfAtEnd(t *testing.T) {
	l := From([]int{1, 2, 3})
	defer l.Release()

	require.NoError(t, l.InsertList(3, l))

	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, l.ToSlice())
}

func TestList_AddListSelfRepeated(t *testing.T) {
	l := From([]int{7})
	defer l.Release()

	for i := 0; i < 4; i++ {
		require.NoError(t, l.AddList(l))
	}

	assert.Equal(t, 16, l.Len())
	for _, v := range l.ToSlice() {
		assert.Equal(t, 7, v)
	}
}

func TestList_InsertSliceAliasedWindow(t *testing.T) {
	l := From([]int{1, 2, 3, 4})
	defer l.Release()

	// A sub-slice of the live window, inserted back into the middle.
	require.NoError(t, l.InsertSlice(2, l.Items()[1:3]))

	assert.Equal(t, []int{1, 2, 2, 3, 3, 4}, l.ToSlice())
}

func TestList_InsertSliceAliasedAcrossGrowth(t *testing.T) {
	l := From([]int{1, 2, 3, 4})
	defer l.Release()
	require.Equal(t, 4, l.Cap(), "full: the self-insert below must grow")

	require.NoError(t, l.InsertSlice(0, l.Items()))

	assert.Equal(t, []int{1, 2, 3, 4, 1, 2, 3, 4}, l.ToSlice())
}

func TestList_InsertListNil(t *testing.T) {
	l := New[int]()
	defer l.Release()

	require.ErrorIs(t, l.InsertList(0, nil), ErrInvalidArgument)
	require.ErrorIs(t, l.AddList(nil), ErrInvalidArgument)
}

func TestList_AddSeq(t *testing.T) {
	l := New[int]()
	defer l.Release()

	require.NoError(t, l.AddSeq(slices.Values([]int{1, 2, 3})))
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
}

func TestList_InsertSeq(t *testing.T) {
	l := From([]int{1, 4})
	defer l.Release()

	require.NoError(t, l.InsertSeq(1, slices.Values([]int{2, 3})))
	assert.Equal(t, []int{1, 2, 3, 4}, l.ToSlice())

	require.ErrorIs(t, l.InsertSeq(9, slices.Values([]int{0})), ErrIndexOutOfRange)
}

func TestConvert(t *testing.T) {
	l := From([]int{1, 2, 3})
	defer l.Release()

	doubled := Convert(l, func(v int) int { return v * 2 })
	defer doubled.Release()

	assert.Equal(t, []int{2, 4, 6}, doubled.ToSlice())
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice(), "source is not mutated")
}

func TestConvert_TypeChange(t *testing.T) {
	l := From([]int{1, 22, 333})
	defer l.Release()

	lengths := Convert(l, func(v int) bool { return v > 10 })
	defer lengths.Release()

	assert.Equal(t, []bool{false, true, true}, lengths.ToSlice())
}

func TestList_FindAll(t *testing.T) {
	l := From([]int{1, 2, 3, 4, 5, 6})
	defer l.Release()

	even := l.FindAll(func(v int) bool { return v%2 == 0 })
	defer even.Release()

	assert.Equal(t, []int{2, 4, 6}, even.ToSlice())
	assert.Equal(t, 6, l.Len(), "source is not mutated")

	none := l.FindAll(func(v int) bool { return v > 100 })
	defer none.Release()
	assert.Equal(t, 0, none.Len())
}
