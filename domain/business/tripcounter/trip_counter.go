package tripcounter

import (
	"sort"
)

// Count pair of a value and the amount of trips in which it appears
type Count[K comparable] struct {
	Value   K   `json:"value"`
	Counter int `json:"counter"`
}

// TripCounter counts how many trips share the same value of some field (station, hour, user type...).
// + less: orders values; among values with the same counter the lowest one wins
// + counters: amount of trips per value
type TripCounter[K comparable] struct {
	less     func(a K, b K) bool
	counters map[K]int
}

func NewTripCounter[K comparable](less func(a K, b K) bool) *TripCounter[K] {
	return &TripCounter[K]{
		less:     less,
		counters: make(map[K]int),
	}
}

func (tc *TripCounter[K]) UpdateCounter(value K) {
	tc.counters[value] += 1
}

// Len returns the amount of distinct values counted
func (tc *TripCounter[K]) Len() int {
	return len(tc.counters)
}

// Top returns the value with the highest counter. The second value is false if nothing was counted
func (tc *TripCounter[K]) Top() (Count[K], bool) {
	var top Count[K]
	found := false
	for value, counter := range tc.counters {
		if !found || counter > top.Counter || (counter == top.Counter && tc.less(value, top.Value)) {
			top = Count[K]{Value: value, Counter: counter}
			found = true
		}
	}
	return top, found
}

// Counts returns every value sorted by counter, highest first
func (tc *TripCounter[K]) Counts() []Count[K] {
	counts := make([]Count[K], 0, len(tc.counters))
	for value, counter := range tc.counters {
		counts = append(counts, Count[K]{Value: value, Counter: counter})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Counter != counts[j].Counter {
			return counts[i].Counter > counts[j].Counter
		}
		return tc.less(counts[i].Value, counts[j].Value)
	})
	return counts
}
