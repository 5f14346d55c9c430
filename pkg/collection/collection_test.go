package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/vendora/pkg/collection"
)

func TestMapAndFilter(t *testing.T) {
	nums := []int{1, 2, 3, 4}

	doubled := collection.Map(nums, func(n int) int { return n * 2 })
	assert.Equal(t, []int{2, 4, 6, 8}, doubled)

	even := collection.Filter(nums, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
}

func TestFirstAndContains(t *testing.T) {
	nums := []int{5, 6, 7}

	v, ok := collection.First(nums, func(n int) bool { return n > 5 })
	assert.True(t, ok)
	assert.Equal(t, 6, v)

	_, ok = collection.First(nums, func(n int) bool { return n > 10 })
	assert.False(t, ok)

	assert.True(t, collection.Contains(nums, func(n int) bool { return n == 7 }))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 6.0, collection.Sum([]float64{1, 2, 3}, func(f float64) float64 { return f }))
	assert.Equal(t, 0.0, collection.Sum(nil, func(f float64) float64 { return f }))
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, collection.Reverse([]int{1, 2, 3}))
}

func TestKeyBy(t *testing.T) {
	type rec struct{ ID string }
	m := collection.KeyBy([]rec{{"a"}, {"b"}}, func(r rec) string { return r.ID })
	assert.Equal(t, rec{"b"}, m["b"])
}

func TestPaginate(t *testing.T) {
	s := make([]int, 15)
	for i := range s {
		s[i] = i
	}

	assert.Len(t, collection.Paginate(s, 1, 10), 10)
	assert.Len(t, collection.Paginate(s, 2, 10), 5)
	assert.Nil(t, collection.Paginate(s, 99, 10), "out-of-range page yields nil")
	assert.Len(t, collection.Paginate(s, 0, 10), 10, "page below 1 clamps to 1")
	assert.Nil(t, collection.Paginate(s, 1, 0))
}
