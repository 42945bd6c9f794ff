package storage

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/crypto/blake2b"
)

// MagicHeader opens every encoded snapshot.
var MagicHeader = []byte("STRLOG01")

const (
	idSize       = 16
	checksumSize = blake2b.Size256
	// headerSize is Magic(8) + ID(16) + RowCount(4).
	headerSize = 8 + idSize + 4
)

// Header describes an encoded snapshot.
type Header struct {
	ID       uuid.UUID
	RowCount uint32
	Checksum [checksumSize]byte // BLAKE2b-256 of the uncompressed block
}

type SnapshotWriter struct {
	encoder *zstd.Encoder
}

func NewSnapshotWriter() (*SnapshotWriter, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	return &SnapshotWriter{encoder: enc}, nil
}

// Close releases the encoder.
func (sw *SnapshotWriter) Close() error {
	return sw.encoder.Close()
}

// WriteSnapshot encodes entries to w under a fresh snapshot ID.
func (sw *SnapshotWriter) WriteSnapshot(w io.Writer, entries []string) error {
	_, err := sw.WriteSnapshotWithID(w, uuid.New(), entries)
	return err
}

// WriteSnapshotWithID encodes entries to w and returns the header written.
//
// Layout: Magic | ID | RowCount | [Size uint32][zstd block] | Checksum
func (sw *SnapshotWriter) WriteSnapshotWithID(w io.Writer, id uuid.UUID, entries []string) (Header, error) {
	raw := encodeStrings(entries)
	hdr := Header{
		ID:       id,
		RowCount: uint32(len(entries)),
		Checksum: blake2b.Sum256(raw),
	}

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(raw)/2+checksumSize))

	// 1. Header
	buf.Write(MagicHeader)
	buf.Write(hdr.ID[:])
	binary.Write(buf, binary.LittleEndian, hdr.RowCount)

	// 2. Body
	var compressed []byte
	if len(raw) > 0 {
		compressed = sw.encoder.EncodeAll(raw, make([]byte, 0, len(raw)))
	}
	binary.Write(buf, binary.LittleEndian, uint32(len(compressed)))
	buf.Write(compressed)

	// 3. Footer
	buf.Write(hdr.Checksum[:])

	if _, err := w.Write(buf.Bytes()); err != nil {
		return Header{}, err
	}
	return hdr, nil
}

// encodeStrings serializes entries as [Len uint32][Bytes]...
func encodeStrings(entries []string) []byte {
	size := 0
	for _, s := range entries {
		size += 4 + len(s)
	}
	out := make([]byte, 0, size)
	for _, s := range entries {
		out = binary.LittleEndian.AppendUint32(out, uint32(len(s)))
		out = append(out, s...)
	}
	return out
}
