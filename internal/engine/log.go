package engine

// DefaultCapacity is the number of rows a new Log reserves up front.
const DefaultCapacity = 64

// avgValueSize is the per-row byte estimate used to size the buffer.
const avgValueSize = 16

// Log is an append-only, insertion-ordered record of text values.
// Duplicates are kept. Entries are never removed or reordered, so Len always
// equals the number of Insert calls.
//
// A Log is owned by a single caller and is not safe for concurrent use.
type Log struct {
	col *StringColumn
}

// NewLog returns an empty log.
func NewLog() *Log {
	return NewLogWithCapacity(DefaultCapacity)
}

// NewLogWithCapacity returns an empty log with room for capacity rows.
// The hint only affects allocation, never behavior.
func NewLogWithCapacity(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		col: NewStringColumn(capacity*avgValueSize, capacity),
	}
}

// Insert appends value to the end of the log. It always succeeds.
func (l *Log) Insert(value string) bool {
	l.col.AppendString(value)
	return true
}

// Has reports whether value equals at least one entry.
func (l *Log) Has(value string) bool {
	return l.IndexOf(value) >= 0
}

// IndexOf returns the index of the first entry equal to value, or -1.
func (l *Log) IndexOf(value string) int {
	n := l.col.Size()
	for i := 0; i < n; i++ {
		if l.col.Equal(i, value) {
			return i
		}
	}
	return -1
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return l.col.Size()
}

// At returns the entry at index i.
func (l *Log) At(i int) (string, bool) {
	if i < 0 || i >= l.col.Size() {
		return "", false
	}
	return l.col.String(i), true
}

// Snapshot returns the entries in insertion order.
// The slice is a copy; changing it does not affect the log.
func (l *Log) Snapshot() []string {
	n := l.col.Size()
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = l.col.String(i)
	}
	return out
}

// Each calls fn for every entry in insertion order until fn returns false.
func (l *Log) Each(fn func(i int, value string) bool) {
	n := l.col.Size()
	for i := 0; i < n; i++ {
		if !fn(i, l.col.String(i)) {
			return
		}
	}
}

// FromValues builds a log by inserting values in order.
func FromValues(values []string) *Log {
	l := NewLogWithCapacity(len(values))
	for _, v := range values {
		l.Insert(v)
	}
	return l
}
