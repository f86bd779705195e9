package container

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	huffman "github.com/chronos-tachyon/bytehuff"
)

const (
	magic   = "HUFP"
	version = 1

	// maxTableLength bounds the table of either format: a count plus 256
	// entries of one symbol byte and one uvarint each.
	maxTableLength = binary.MaxVarintLen16 + huffman.NumSymbols*(1+binary.MaxVarintLen64)

	// emptyChecksum is the XXH64 digest of zero bytes.
	emptyChecksum = 0xef46db3751d8e999
)

// Header is the fixed part of a frame.
type Header struct {
	Format   TableFormat
	Padding  int
	Length   uint64
	Checksum uint64
}

// Compress encodes data as a single frame and writes it to w.  An empty
// input produces a frame with no table and no payload.
func Compress(w io.Writer, data []byte, format TableFormat) (int64, error) {
	return compress(w, data, huffman.Count(data), format)
}

// CompressFrom reads r until EOF and writes its contents to w as a single
// frame.  The frequencies are counted while reading.
func CompressFrom(w io.Writer, r io.Reader, format TableFormat) (int64, error) {
	var counter huffman.Counter
	data, err := io.ReadAll(io.TeeReader(r, &counter))
	if err != nil {
		return 0, err
	}
	return compress(w, data, counter.Table(), format)
}

func compress(w io.Writer, data []byte, freqs huffman.FrequencyTable, format TableFormat) (int64, error) {
	hdr := Header{
		Format:   format,
		Length:   uint64(len(data)),
		Checksum: xxhash.Sum64(data),
	}

	var table []byte
	var enc *huffman.Encoded
	if len(data) != 0 {
		t, err := format.Prepare(freqs)
		if err != nil {
			return 0, err
		}
		enc, err = huffman.EncodeWithTree(data, t)
		if err != nil {
			return 0, err
		}
		table, err = format.MarshalTable(freqs, &enc.Codes)
		if err != nil {
			return 0, err
		}
		hdr.Padding = enc.Padding
	}

	cw := &countingWriter{w: bufio.NewWriter(w)}
	writeHeader(cw, hdr)
	if enc != nil {
		writeUvarint(cw, uint64(len(table)))
		cw.write(table)
		writeUvarint(cw, uint64(len(enc.Data)))
		cw.write(enc.Data)
	}
	if cw.err == nil {
		cw.err = cw.w.Flush()
	}
	return cw.n, cw.err
}

func writeHeader(cw *countingWriter, hdr Header) {
	var buf [4 + 3 + binary.MaxVarintLen64 + 8]byte
	b := append(buf[:0], magic...)
	b = append(b, version, hdr.Format.ID(), byte(hdr.Padding))
	b = binary.AppendUvarint(b, hdr.Length)
	b = binary.BigEndian.AppendUint64(b, hdr.Checksum)
	cw.write(b)
}

func writeUvarint(cw *countingWriter, v uint64) {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	cw.write(buf[:n])
}

// ReadHeader reads the fixed part of a frame.  It returns io.EOF if r is
// already at EOF, and io.ErrUnexpectedEOF if the header is truncated.
func ReadHeader(r io.ByteReader) (Header, error) {
	var hdr Header
	var fixed [4 + 3]byte
	for i := range fixed {
		b, err := r.ReadByte()
		if err == io.EOF && i != 0 {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return hdr, err
		}
		fixed[i] = b
	}

	if string(fixed[:4]) != magic {
		return hdr, ErrBadMagic
	}
	if fixed[4] != version {
		return hdr, fmt.Errorf("%w: %d", ErrUnsupportedVersion, fixed[4])
	}
	format, err := FormatByID(fixed[5])
	if err != nil {
		return hdr, err
	}
	hdr.Format = format
	hdr.Padding = int(fixed[6])

	hdr.Length, err = readUvarint(r)
	if err != nil {
		return hdr, err
	}

	var sum [8]byte
	for i := range sum {
		if sum[i], err = r.ReadByte(); err != nil {
			return hdr, noEOF(err)
		}
	}
	hdr.Checksum = binary.BigEndian.Uint64(sum[:])
	return hdr, nil
}

func readUvarint(r io.ByteReader) (uint64, error) {
	v, err := binary.ReadUvarint(r)
	return v, noEOF(err)
}

func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (cw *countingWriter) write(p []byte) {
	if cw.err != nil {
		return
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
}
