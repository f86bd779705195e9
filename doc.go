// Package huffman implements Huffman coding of byte streams: frequency
// counting, greedy tree construction, code assignment, bit packing, and
// tree-guided decoding.  Canonical codes are provided so that a tree can be
// shipped as a list of code lengths.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
//     <https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
package huffman
