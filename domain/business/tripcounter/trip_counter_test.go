package tripcounter

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripCounterTop(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   Count[string]
	}{
		{
			name:   "single maximum",
			values: []string{"Canal St", "Clark St", "Canal St"},
			want:   Count[string]{Value: "Canal St", Counter: 2},
		},
		{
			name:   "tie is broken by the lowest value",
			values: []string{"Wells St", "Clark St", "Wells St", "Clark St"},
			want:   Count[string]{Value: "Clark St", Counter: 2},
		},
		{
			name:   "single value",
			values: []string{"Wells St"},
			want:   Count[string]{Value: "Wells St", Counter: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := NewTripCounter[string](cmp.Less[string])
			for _, value := range tt.values {
				counter.UpdateCounter(value)
			}

			top, ok := counter.Top()
			require.True(t, ok)
			assert.Equal(t, tt.want, top)
		})
	}
}

func TestTripCounterTopEmpty(t *testing.T) {
	counter := NewTripCounter[int](cmp.Less[int])

	_, ok := counter.Top()
	assert.False(t, ok)
	assert.Empty(t, counter.Counts())
	assert.Equal(t, 0, counter.Len())
}

func TestTripCounterCounts(t *testing.T) {
	counter := NewTripCounter[int](cmp.Less[int])
	for _, hour := range []int{17, 8, 17, 9, 8, 17, 23} {
		counter.UpdateCounter(hour)
	}

	assert.Equal(t, []Count[int]{
		{Value: 17, Counter: 3},
		{Value: 8, Counter: 2},
		{Value: 9, Counter: 1},
		{Value: 23, Counter: 1},
	}, counter.Counts())
	assert.Equal(t, 4, counter.Len())
}
