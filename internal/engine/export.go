package engine

import (
	"io"
)

// ExportFunc writes a snapshot of entries to w.
// This allows the engine package to not depend on storage package directly.
type ExportFunc func(w io.Writer, entries []string) error

// ImportFunc reads entries previously written by an ExportFunc.
type ImportFunc func(r io.Reader) ([]string, error)

// Export writes the log's current snapshot using writerFn.
// An empty log is exported too; it is a valid state.
func Export(l *Log, w io.Writer, writerFn ExportFunc) error {
	return writerFn(w, l.Snapshot())
}

// Import rebuilds a log from r by inserting every decoded entry in order.
func Import(r io.Reader, readerFn ImportFunc) (*Log, error) {
	entries, err := readerFn(r)
	if err != nil {
		return nil, err
	}
	return FromValues(entries), nil
}
