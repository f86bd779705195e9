package container

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	huffman "github.com/chronos-tachyon/bytehuff"
)

// Decompressor decodes frames.  When constructed with a positive cache size,
// it remembers the trees of recently seen tables, so that a stream of frames
// that share a table only pays for rebuilding the tree once.
//
// A Decompressor is safe for concurrent use.
type Decompressor struct {
	cache *lru.Cache[string, *huffman.Tree]
}

// NewDecompressor returns a Decompressor that caches up to cacheSize trees.
// A cacheSize of 0 disables caching.
func NewDecompressor(cacheSize int) (*Decompressor, error) {
	d := &Decompressor{}
	if cacheSize > 0 {
		cache, err := lru.New[string, *huffman.Tree](cacheSize)
		if err != nil {
			return nil, err
		}
		d.cache = cache
	}
	return d, nil
}

// Decompress decodes a single frame from r.
func Decompress(r io.Reader) ([]byte, error) {
	var d Decompressor
	return d.Decompress(r)
}

// Decompress decodes a single frame from r.  If r does not implement
// io.ByteReader, it is wrapped in a bufio.Reader, which may consume bytes
// beyond the end of the frame.
func (d *Decompressor) Decompress(r io.Reader) ([]byte, error) {
	data, err := d.ReadFrame(asByteReader(r))
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return data, err
}

// DecompressAll decodes frames from r until EOF, writing the decoded data of
// each frame to w in order.  It returns the number of frames decoded.
func (d *Decompressor) DecompressAll(w io.Writer, r io.Reader) (int, error) {
	br := asByteReader(r)
	var frames int
	for {
		data, err := d.ReadFrame(br)
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, fmt.Errorf("frame %d: %w", frames, err)
		}
		if _, err := w.Write(data); err != nil {
			return frames, err
		}
		frames++
	}
}

// CachedTrees returns the number of trees currently cached.
func (d *Decompressor) CachedTrees() int {
	if d.cache == nil {
		return 0
	}
	return d.cache.Len()
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

func asByteReader(r io.Reader) byteReader {
	if br, ok := r.(byteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// ReadFrame decodes one frame from r.  It returns io.EOF if r is at EOF
// before the first byte of the frame.
func (d *Decompressor) ReadFrame(r byteReader) ([]byte, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if hdr.Length == 0 {
		if hdr.Padding != 0 || hdr.Checksum != emptyChecksum {
			return nil, fmt.Errorf("%w: empty frame with padding %d and checksum %016x", ErrLength, hdr.Padding, hdr.Checksum)
		}
		return []byte{}, nil
	}

	tableLength, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	if tableLength == 0 || tableLength > maxTableLength {
		return nil, fmt.Errorf("%w: table length %d", ErrLength, tableLength)
	}
	table := make([]byte, tableLength)
	if _, err := io.ReadFull(r, table); err != nil {
		return nil, noEOF(err)
	}

	t, err := d.tree(hdr.Format, table)
	if err != nil {
		return nil, err
	}

	payloadLength, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	if payloadLength > maxPayloadLength(hdr.Length) {
		return nil, fmt.Errorf("%w: payload length %d for %d bytes of data", ErrLength, payloadLength, hdr.Length)
	}
	var payload bytes.Buffer
	if _, err := io.CopyN(&payload, r, int64(payloadLength)); err != nil {
		return nil, noEOF(err)
	}

	data, err := huffman.Decode(payload.Bytes(), hdr.Padding, t)
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) != hdr.Length {
		return nil, fmt.Errorf("%w: decoded %d bytes, expected %d", ErrLength, len(data), hdr.Length)
	}
	if sum := xxhash.Sum64(data); sum != hdr.Checksum {
		return nil, fmt.Errorf("%w: got %016x, expected %016x", ErrChecksum, sum, hdr.Checksum)
	}
	return data, nil
}

// maxPayloadLength is the size of the payload if every symbol used the
// longest possible code.
func maxPayloadLength(length uint64) uint64 {
	if length > math.MaxUint64/huffman.MaxCodeSize {
		return math.MaxInt64
	}
	return (length*huffman.MaxCodeSize + 7) / 8
}

func (d *Decompressor) tree(format TableFormat, table []byte) (*huffman.Tree, error) {
	if d.cache == nil {
		return format.UnmarshalTable(table)
	}

	key := string(append([]byte{format.ID()}, table...))
	if t, found := d.cache.Get(key); found {
		return t, nil
	}
	t, err := format.UnmarshalTable(table)
	if err != nil {
		return nil, err
	}
	d.cache.Add(key, t)
	return t, nil
}
