// Package frequency counts items and compares the resulting frequency maps.
package frequency

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/deanrtaylor1/docdistance/lexer"
	"github.com/deanrtaylor1/docdistance/util"
)

// Map counts occurrences of each distinct item.
type Map[T comparable] map[T]int

// Stat is a single row of a ranked Map
type Stat[T comparable] struct {
	Item  T   `json:"item"`
	Count int `json:"count"`
}

// Count returns how many times each item occurs in items
func Count[T comparable](items []T) Map[T] {
	m := make(Map[T], len(items))
	for _, item := range items {
		m[item] += 1
	}
	return m
}

// Letter counts for a single word
func LetterFrequencies(word string) Map[string] {
	return Count(lexer.Letters(word))
}

// Word counts for normalized text
func WordFrequencies(text string) Map[string] {
	return Count(lexer.Words(text))
}

// Total is the sum of all counts, the length of the counted sequence
func (m Map[T]) Total() int {
	var total int
	for _, freq := range m {
		total += freq
	}
	return total
}

// Similarity returns 1 - diff/total rounded to two decimals, where diff is
// the sum of the absolute count differences over the union of keys and total
// is the sum of all counts in both maps. Two empty maps are identical.
func Similarity[T comparable](m1, m2 Map[T]) float64 {
	var diff, total int
	for key, freq1 := range m1 {
		freq2 := m2[key]
		diff += abs(freq1 - freq2)
		total += freq1 + freq2
	}
	for key, freq2 := range m2 {
		if _, ok := m1[key]; ok {
			continue
		}
		diff += freq2
		total += freq2
	}

	if total == 0 {
		return 1.0
	}
	return Round(1-float64(diff)/float64(total), 2)
}

// MostFrequent sums the counts of both maps and returns every item sharing the
// highest combined count, in ascending order.
func MostFrequent[T cmp.Ordered](m1, m2 Map[T]) ([]T, error) {
	combined := make(Map[T], len(m1)+len(m2))
	for item, freq := range m1 {
		combined[item] += freq
	}
	for item, freq := range m2 {
		combined[item] += freq
	}
	if len(combined) == 0 {
		return nil, fmt.Errorf("%w: no items to pick the most frequent from", util.ErrInvalidInput)
	}

	maxFreq := math.MinInt
	for _, freq := range combined {
		if freq > maxFreq {
			maxFreq = freq
		}
	}

	items := []T{}
	for item, freq := range combined {
		if freq == maxFreq {
			items = append(items, item)
		}
	}
	slices.Sort(items)
	return items, nil
}

// Rank returns the map as a slice sorted by descending count, ties in ascending item order
func Rank[T cmp.Ordered](m Map[T]) []Stat[T] {
	stats := make([]Stat[T], 0, len(m))
	for item, freq := range m {
		stats = append(stats, Stat[T]{Item: item, Count: freq})
	}
	slices.SortFunc(stats, func(a, b Stat[T]) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Item, b.Item)
	})
	return stats
}

// Round rounds x to the given number of decimals. The exact binary value of x
// is rounded, halfway cases go to the even digit.
func Round(x float64, decimals int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', decimals, 64), 64)
	if err != nil {
		return x
	}
	return r
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
