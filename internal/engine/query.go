package engine

import (
	"github.com/coffersTech/strlog/internal/pkg/entryql"
)

// Select returns the entries matching query, in insertion order.
// An empty query matches every entry.
func (l *Log) Select(query string) ([]Match, error) {
	node, err := entryql.Parse(query)
	if err != nil {
		return nil, err
	}
	return l.SelectNode(node), nil
}

// SelectNode is Select for an already parsed query.
func (l *Log) SelectNode(node entryql.Node) []Match {
	var result []Match
	l.Each(func(i int, v string) bool {
		if entryql.Match(node, v) {
			result = append(result, Match{Index: i, Value: v})
		}
		return true
	})
	return result
}

// Count returns how many entries match query.
func (l *Log) Count(query string) (int, error) {
	node, err := entryql.Parse(query)
	if err != nil {
		return 0, err
	}
	n := 0
	l.Each(func(_ int, v string) bool {
		if entryql.Match(node, v) {
			n++
		}
		return true
	})
	return n, nil
}
