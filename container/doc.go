// Package container defines a self-contained frame format for Huffman-coded
// data.  Each frame carries enough information about its tree to be decoded
// in a fresh process: the frame's TableFormat decides whether that is the
// symbol frequencies or the canonical code lengths.
//
// Frame layout:
//
//     magic        4 bytes   "HUFP"
//     version      1 byte    1
//     format       1 byte    TableFormat.ID()
//     padding      1 byte    0 .. 7
//     length       uvarint   length of the original data
//     checksum     8 bytes   XXH64 of the original data, big-endian
//
// and, only if length is non-zero:
//
//     tableLength  uvarint
//     table        tableLength bytes, see TableFormat
//     payloadLength uvarint
//     payload      payloadLength bytes of packed codes
//
package container
