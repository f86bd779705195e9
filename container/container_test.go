package container

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	huffman "github.com/chronos-tachyon/bytehuff"
)

var allFormats = []TableFormat{Frequencies, Lengths}

func compressToBytes(t *testing.T, data []byte, format TableFormat) []byte {
	t.Helper()
	var buf bytes.Buffer
	n, err := Compress(&buf, data, format)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	random := make([]byte, 10000)
	rng.Read(random)

	inputs := map[string][]byte{
		"empty":      {},
		"one-byte":   []byte("x"),
		"single":     []byte(strings.Repeat("a", 1000)),
		"small":      []byte("aaabbc"),
		"zero-bytes": {0, 0, 0, 1, 0, 255},
		"text":       []byte("she sells sea shells by the sea shore"),
		"random":     random,
	}
	for _, format := range allFormats {
		for name, input := range inputs {
			t.Run(format.Name()+"/"+name, func(t *testing.T) {
				frame := compressToBytes(t, input, format)
				output, err := Decompress(bytes.NewReader(frame))
				require.NoError(t, err)
				require.Equal(t, input, output)
			})
		}
	}
}

func TestCompress_EmptyFrame(t *testing.T) {
	frame := compressToBytes(t, nil, Lengths)
	require.Equal(t, []byte{
		'H', 'U', 'F', 'P', 1, 2, 0, 0,
		0xef, 0x46, 0xdb, 0x37, 0x51, 0xd8, 0xe9, 0x99,
	}, frame)
	require.Equal(t, xxhash.Sum64(nil), uint64(emptyChecksum))
}

func TestCompress_SmallFrame(t *testing.T) {
	frame := compressToBytes(t, []byte("aaabbc"), Frequencies)

	hdr, err := ReadHeader(bytes.NewReader(frame))
	require.NoError(t, err)
	require.Equal(t, Frequencies, hdr.Format)
	require.Equal(t, 7, hdr.Padding)
	require.Equal(t, uint64(6), hdr.Length)
	require.Equal(t, xxhash.Sum64String("aaabbc"), hdr.Checksum)

	// magic, version, format, padding, length, checksum
	rest := frame[4+3+1+8:]
	expectTable := []byte{3, 'a', 3, 'b', 2, 'c', 1}
	require.Equal(t, byte(len(expectTable)), rest[0])
	require.Equal(t, expectTable, rest[1:1+len(expectTable)])
	require.Equal(t, []byte{2, 0x1f, 0x00}, rest[1+len(expectTable):])
}

func TestCompressFrom(t *testing.T) {
	input := []byte("the quick brown fox jumps over the lazy dog")
	for _, format := range allFormats {
		var viaReader bytes.Buffer
		_, err := CompressFrom(&viaReader, bytes.NewReader(input), format)
		require.NoError(t, err)
		require.Equal(t, compressToBytes(t, input, format), viaReader.Bytes())
	}
}

func TestLengths_SmallerTable(t *testing.T) {
	input := []byte(strings.Repeat("abcdefghijklmnop", 1000))
	freqs := huffman.Count(input)

	freqTree, err := Frequencies.Prepare(freqs)
	require.NoError(t, err)
	freqCodes, err := huffman.AssignCodes(freqTree)
	require.NoError(t, err)
	freqTable, err := Frequencies.MarshalTable(freqs, &freqCodes)
	require.NoError(t, err)

	lenTree, err := Lengths.Prepare(freqs)
	require.NoError(t, err)
	lenCodes, err := huffman.AssignCodes(lenTree)
	require.NoError(t, err)
	lenTable, err := Lengths.MarshalTable(freqs, &lenCodes)
	require.NoError(t, err)

	require.Less(t, len(lenTable), len(freqTable))
	require.Equal(t, freqCodes.SizeBySymbol(), lenCodes.SizeBySymbol())
}

func TestUnmarshalTable_Errors(t *testing.T) {
	type testRow struct {
		name   string
		format TableFormat
		table  []byte
	}

	testData := []testRow{
		{name: "freq-empty", format: Frequencies, table: []byte{0}},
		{name: "freq-truncated", format: Frequencies, table: []byte{2, 'a', 1}},
		{name: "freq-zero", format: Frequencies, table: []byte{1, 'a', 0}},
		{name: "freq-unordered", format: Frequencies, table: []byte{2, 'b', 1, 'a', 1}},
		{name: "freq-duplicate", format: Frequencies, table: []byte{2, 'a', 1, 'a', 1}},
		{name: "freq-trailing", format: Frequencies, table: []byte{1, 'a', 1, 0}},
		{name: "len-too-many", format: Lengths, table: []byte{0x81, 0x02}},
		{name: "len-zero", format: Lengths, table: []byte{2, 'a', 1, 'b', 0}},
		{name: "len-incomplete", format: Lengths, table: []byte{2, 'a', 1, 'b', 2}},
		{name: "len-oversubscribed", format: Lengths, table: []byte{3, 'a', 1, 'b', 1, 'c', 1}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := row.format.UnmarshalTable(row.table)
			require.ErrorIs(t, err, ErrBadTable)
		})
	}

	_, err := Lengths.UnmarshalTable([]byte{2, 'a', 1, 'b', 2})
	require.ErrorIs(t, err, huffman.ErrDegenerateTree)
}

func TestDecompress_Errors(t *testing.T) {
	good := compressToBytes(t, []byte("aaabbc"), Frequencies)

	corrupt := func(fn func(frame []byte)) []byte {
		frame := append([]byte(nil), good...)
		fn(frame)
		return frame
	}

	type testRow struct {
		name   string
		frame  []byte
		expect error
	}

	testData := []testRow{
		{name: "empty-stream", frame: nil, expect: io.ErrUnexpectedEOF},
		{name: "truncated-header", frame: good[:5], expect: io.ErrUnexpectedEOF},
		{name: "truncated-payload", frame: good[:len(good)-1], expect: io.ErrUnexpectedEOF},
		{name: "magic", frame: corrupt(func(f []byte) { f[0] = 'X' }), expect: ErrBadMagic},
		{name: "version", frame: corrupt(func(f []byte) { f[4] = 9 }), expect: ErrUnsupportedVersion},
		{name: "format", frame: corrupt(func(f []byte) { f[5] = 77 }), expect: ErrUnknownFormat},
		{name: "checksum", frame: corrupt(func(f []byte) { f[8] ^= 0xff }), expect: ErrChecksum},
		{name: "length", frame: corrupt(func(f []byte) { f[7] = 5 }), expect: ErrLength},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := Decompress(bytes.NewReader(row.frame))
			require.ErrorIs(t, err, row.expect)
		})
	}

	t.Run("padding", func(t *testing.T) {
		_, err := Decompress(bytes.NewReader(corrupt(func(f []byte) { f[6] = 9 })))
		var invalid *huffman.InvalidPaddingError
		require.True(t, errors.As(err, &invalid), "expected *InvalidPaddingError, got %v", err)
	})

	t.Run("dangling-bits", func(t *testing.T) {
		// 00011110 1: "aaabc" then a dangling "1"
		frame := corrupt(func(f []byte) {
			f[len(f)-2] = 0x1e
			f[len(f)-1] = 0x80
		})
		_, err := Decompress(bytes.NewReader(frame))
		var malformed *huffman.MalformedDataError
		require.True(t, errors.As(err, &malformed), "expected *MalformedDataError, got %v", err)
	})
}

func TestDecompressor_Cache(t *testing.T) {
	var stream bytes.Buffer
	inputs := []string{"abcabc", "cbacba", "aabbcc", "xyz", "abcabc"}
	for _, input := range inputs {
		_, err := Compress(&stream, []byte(input), Lengths)
		require.NoError(t, err)
	}

	d, err := NewDecompressor(8)
	require.NoError(t, err)

	var out bytes.Buffer
	frames, err := d.DecompressAll(&out, &stream)
	require.NoError(t, err)
	require.Equal(t, len(inputs), frames)
	require.Equal(t, strings.Join(inputs, ""), out.String())

	// every "abc" permutation with equal counts shares one table
	require.Equal(t, 2, d.CachedTrees())
}

func TestDecompressor_NoCache(t *testing.T) {
	d, err := NewDecompressor(0)
	require.NoError(t, err)

	frame := compressToBytes(t, []byte("hello, world"), Frequencies)
	output, err := d.Decompress(bytes.NewReader(frame))
	require.NoError(t, err)
	require.Equal(t, "hello, world", string(output))
	require.Equal(t, 0, d.CachedTrees())
}

func TestFormatByName(t *testing.T) {
	format, err := FormatByName("Lengths")
	require.NoError(t, err)
	require.Equal(t, Lengths, format)

	_, err = FormatByName("zstd")
	require.ErrorIs(t, err, ErrUnknownFormat)

	require.Equal(t, []string{"frequencies", "lengths"}, FormatNames())
}
