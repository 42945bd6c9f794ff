package engine

// StringColumn stores variable-length strings using a flat buffer and offsets.
// This keeps a log of n values in two slices instead of n string headers.
type StringColumn struct {
	Data    []byte // The flat buffer storing all bytes
	Offsets []int  // Starting offset for each row. Length is RowCount + 1
}

// NewStringColumn creates a column with room for rowsCap rows of roughly
// dataCap bytes in total.
func NewStringColumn(dataCap, rowsCap int) *StringColumn {
	if dataCap < 0 {
		dataCap = 0
	}
	if rowsCap < 0 {
		rowsCap = 0
	}
	c := &StringColumn{
		Data:    make([]byte, 0, dataCap),
		Offsets: make([]int, 0, rowsCap+1),
	}
	c.Offsets = append(c.Offsets, 0) // Initial offset
	return c
}

// AppendString adds a string to the column. The bytes are copied.
func (c *StringColumn) AppendString(v string) {
	c.Data = append(c.Data, v...)
	c.Offsets = append(c.Offsets, len(c.Data))
}

// Size returns the number of rows.
func (c *StringColumn) Size() int {
	return len(c.Offsets) - 1
}

// Bytes returns the estimated memory usage in bytes.
func (c *StringColumn) Bytes() int {
	return len(c.Data) + len(c.Offsets)*8
}

// PayloadBytes returns the number of value bytes stored.
func (c *StringColumn) PayloadBytes() int {
	return len(c.Data)
}

// Get returns the raw bytes at index i, or nil when i is out of range.
// The returned slice aliases the column buffer and must be treated as read-only.
func (c *StringColumn) Get(i int) []byte {
	if i < 0 || i >= len(c.Offsets)-1 {
		return nil
	}
	return c.Data[c.Offsets[i]:c.Offsets[i+1]]
}

// Equal reports whether row i holds exactly v, without allocating.
func (c *StringColumn) Equal(i int, v string) bool {
	start, end := c.Offsets[i], c.Offsets[i+1]
	if end-start != len(v) {
		return false
	}
	return string(c.Data[start:end]) == v
}

// String returns row i as a freshly allocated string.
func (c *StringColumn) String(i int) string {
	return string(c.Data[c.Offsets[i]:c.Offsets[i+1]])
}
