package engine

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/coffersTech/strlog/internal/storage"
)

func TestExportImportRoundTrip(t *testing.T) {
	writer, err := storage.NewSnapshotWriter()
	if err != nil {
		t.Fatalf("writer: %v", err)
	}
	defer writer.Close()
	reader, err := storage.NewSnapshotReader()
	if err != nil {
		t.Fatalf("reader: %v", err)
	}
	defer reader.Close()

	for _, values := range [][]string{
		nil,
		{"user1", "user2"},
		{"a", "a", "", "a"},
	} {
		src := FromValues(values)

		var buf bytes.Buffer
		if err := Export(src, &buf, writer.WriteSnapshot); err != nil {
			t.Fatalf("export %q: %v", values, err)
		}

		dst, err := Import(&buf, reader.ReadSnapshot)
		if err != nil {
			t.Fatalf("import %q: %v", values, err)
		}
		if !reflect.DeepEqual(dst.Snapshot(), src.Snapshot()) {
			t.Errorf("expected %q, got %q", src.Snapshot(), dst.Snapshot())
		}
		if dst.Len() != src.Len() {
			t.Errorf("expected Len %d, got %d", src.Len(), dst.Len())
		}
	}
}

func TestImportPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Import(bytes.NewReader(nil), func(io.Reader) ([]string, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}
