package storage

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/crypto/blake2b"
)

var (
	ErrInvalidHeader = errors.New("invalid snapshot header")
	ErrTruncated     = errors.New("snapshot truncated")
	ErrChecksum      = errors.New("snapshot checksum mismatch")
	ErrRowCount      = errors.New("snapshot row count mismatch")
	ErrBlockTooLarge = errors.New("snapshot block too large")
)

// MaxBlockSize bounds the compressed and decompressed block sizes.
const MaxBlockSize = 256 << 20

// EntryIterator provides an entry-by-entry view of a decoded snapshot.
type EntryIterator interface {
	Next() bool
	Value() string
	Error() error
}

type SnapshotReader struct {
	decoder *zstd.Decoder
}

func NewSnapshotReader() (*SnapshotReader, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxBlockSize))
	if err != nil {
		return nil, err
	}
	return &SnapshotReader{decoder: dec}, nil
}

// Close releases the decoder.
func (sr *SnapshotReader) Close() {
	sr.decoder.Close()
}

// NewIterator reads and verifies one snapshot from r.
func (sr *SnapshotReader) NewIterator(r io.Reader) (Header, *BlockIterator, error) {
	hdr, raw, err := sr.readBlock(r)
	if err != nil {
		return Header{}, nil, err
	}
	return hdr, &BlockIterator{data: raw, remaining: int(hdr.RowCount)}, nil
}

// ReadSnapshot decodes every entry of one snapshot from r.
func (sr *SnapshotReader) ReadSnapshot(r io.Reader) ([]string, error) {
	_, entries, err := sr.ReadSnapshotWithHeader(r)
	return entries, err
}

// ReadSnapshotWithHeader is ReadSnapshot that also returns the header.
func (sr *SnapshotReader) ReadSnapshotWithHeader(r io.Reader) (Header, []string, error) {
	hdr, it, err := sr.NewIterator(r)
	if err != nil {
		return Header{}, nil, err
	}

	// Each entry takes at least its 4-byte length prefix.
	entries := make([]string, 0, min(int(hdr.RowCount), it.Len()/4))
	for it.Next() {
		entries = append(entries, it.Value())
	}
	if err := it.Error(); err != nil {
		return Header{}, nil, err
	}
	return hdr, entries, nil
}

func (sr *SnapshotReader) readBlock(r io.Reader) (Header, []byte, error) {
	var hdr Header

	// 1. Validate Header
	head := make([]byte, headerSize)
	if _, err := io.ReadFull(r, head); err != nil {
		return hdr, nil, truncated(err)
	}
	if !bytes.Equal(head[:len(MagicHeader)], MagicHeader) {
		return hdr, nil, ErrInvalidHeader
	}
	id, err := uuid.FromBytes(head[8 : 8+idSize])
	if err != nil {
		return hdr, nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	hdr.ID = id
	hdr.RowCount = binary.LittleEndian.Uint32(head[8+idSize:])

	// 2. Body
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return hdr, nil, truncated(err)
	}
	if size > MaxBlockSize {
		return hdr, nil, ErrBlockTooLarge
	}
	compressed := make([]byte, size)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return hdr, nil, truncated(err)
	}

	var raw []byte
	if size > 0 {
		raw, err = sr.decoder.DecodeAll(compressed, nil)
		if err != nil {
			return hdr, nil, fmt.Errorf("decompress snapshot: %w", err)
		}
	}

	// 3. Footer
	if _, err := io.ReadFull(r, hdr.Checksum[:]); err != nil {
		return hdr, nil, truncated(err)
	}
	if blake2b.Sum256(raw) != hdr.Checksum {
		return hdr, nil, ErrChecksum
	}

	return hdr, raw, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

var _ EntryIterator = (*BlockIterator)(nil)

// BlockIterator walks a decoded [Len uint32][Bytes]... block.
type BlockIterator struct {
	data      []byte
	remaining int
	curr      string
	err       error
}

func (it *BlockIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if it.remaining == 0 {
		if len(it.data) != 0 {
			it.err = ErrRowCount
		}
		return false
	}
	if len(it.data) < 4 {
		it.err = ErrRowCount
		return false
	}
	n := binary.LittleEndian.Uint32(it.data)
	if uint64(len(it.data)-4) < uint64(n) {
		it.err = ErrTruncated
		return false
	}
	it.curr = string(it.data[4 : 4+n])
	it.data = it.data[4+n:]
	it.remaining--
	return true
}

// Len returns the number of undecoded bytes left.
func (it *BlockIterator) Len() int {
	return len(it.data)
}

func (it *BlockIterator) Value() string {
	return it.curr
}

func (it *BlockIterator) Error() error {
	return it.err
}
