package engine

import (
	"sort"
)

// Frequencies aggregates entries by value.
// Results are ordered by count, most frequent first; ties keep the order in
// which the values first appeared.
func (l *Log) Frequencies() []ValueCount {
	// value -> position in counts
	buckets := make(map[string]int)
	var counts []ValueCount

	l.Each(func(i int, v string) bool {
		if pos, ok := buckets[v]; ok {
			counts[pos].Count++
			return true
		}
		buckets[v] = len(counts)
		counts = append(counts, ValueCount{Value: v, Count: 1, First: i})
		return true
	})

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return counts
}

// Top returns at most n of the most frequent values.
func (l *Log) Top(n int) []ValueCount {
	counts := l.Frequencies()
	if n >= 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts
}
