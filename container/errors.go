package container

import (
	"errors"
)

var (
	// ErrBadMagic is returned when a frame does not start with the magic
	// bytes.
	ErrBadMagic = errors.New("container: not a Huffman frame")

	// ErrUnsupportedVersion is returned for frames written by a newer
	// version of this package.
	ErrUnsupportedVersion = errors.New("container: unsupported frame version")

	// ErrUnknownFormat is returned for an unrecognized table format.
	ErrUnknownFormat = errors.New("container: unknown table format")

	// ErrBadTable is returned when a table cannot be parsed.
	ErrBadTable = errors.New("container: malformed table")

	// ErrLength is returned when a length field is out of range or the
	// decoded data has the wrong length.
	ErrLength = errors.New("container: length mismatch")

	// ErrChecksum is returned when the decoded data does not match the
	// frame's checksum.
	ErrChecksum = errors.New("container: checksum mismatch")
)
