package sliceutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"unboxed/sliceutil"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		name   string
		input  []int
		target int
		want   int
	}{
		{"Found", []int{1, 2, 3, 2}, 2, 1},
		{"NotFound", []int{1, 2, 3}, 4, -1},
		{"Empty", []int{}, 1, -1},
		{"Nil", nil, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sliceutil.Index(tt.input, tt.target))
		})
	}
}

func TestLastIndex(t *testing.T) {
	assert.Equal(t, 3, sliceutil.LastIndex([]int{1, 2, 3, 2}, 2))
	assert.Equal(t, 0, sliceutil.LastIndex([]int{7}, 7))
	assert.Equal(t, -1, sliceutil.LastIndex([]int{1, 2}, 9))
	assert.Equal(t, -1, sliceutil.LastIndex[int](nil, 9))
}

func TestContains(t *testing.T) {
	assert.True(t, sliceutil.Contains([]uint8{1, 2, 255}, 255))
	assert.False(t, sliceutil.Contains([]uint8{1, 2}, 3))
}

func TestIndexBitPatternEquality(t *testing.T) {
	nan := math.NaN()
	negZero := math.Copysign(0, -1)

	t.Run("NaNFindsNaN", func(t *testing.T) {
		assert.Equal(t, 1, sliceutil.Index([]float64{1, nan, 2}, nan))
		assert.Equal(t, 1, sliceutil.LastIndex([]float64{1, nan, 2}, nan))
	})

	t.Run("SignedZerosDiffer", func(t *testing.T) {
		assert.Equal(t, -1, sliceutil.Index([]float64{0, 1}, negZero))
		assert.Equal(t, 1, sliceutil.Index([]float64{0, negZero}, negZero))
		assert.False(t, sliceutil.Contains([]float32{float32(negZero)}, 0))
	})
}

func TestIndexFunc(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}
	assert.Equal(t, 3, sliceutil.IndexFunc(input, func(x int) bool { return x > 3 }))
	assert.Equal(t, -1, sliceutil.IndexFunc(input, func(x int) bool { return x > 10 }))
	assert.Equal(t, -1, sliceutil.IndexFunc([]int{}, func(int) bool { return true }))
}
