package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 3, EditDistance([]rune("kitten"), []rune("sitting")))
	assert.Equal(t, 0, EditDistance([]string{"a", "b"}, []string{"a", "b"}))
	assert.Equal(t, 2, EditDistance([]string{}, []string{"a", "b"}))
	assert.Equal(t, 2, EditDistance([]string{"a", "b"}, nil))
	assert.Equal(t, 0, EditDistance[string](nil, nil))
	assert.Equal(t, 2, EditDistance([]string{"a", "b"}, []string{"b", "a"}))
	assert.Equal(t, 1, EditDistance([]string{"a", "c"}, []string{"a", "b", "c"}))
}

func TestEditDistance_Symmetric(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	b := []int{2, 3, 9, 5}
	assert.Equal(t, EditDistance(a, b), EditDistance(b, a))
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil))
	assert.Equal(t, 75.0, Average([]int{100, 50}))
	assert.InDelta(t, 83.333, Average([]int{100, 100, 50}), 0.001)
}

func TestPercentRounding(t *testing.T) {
	assert.Equal(t, 67, percent(2, 3))
	assert.Equal(t, 33, percent(1, 3))
	assert.Equal(t, 50, percent(1, 2))
	assert.Equal(t, 100, percent(4, 4))
	// 1/8 = 12.5 rounds up
	assert.Equal(t, 13, percent(1, 8))
}
