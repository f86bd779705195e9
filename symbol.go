package huffman

// Symbol represents a symbol in the byte alphabet.  Every byte value,
// including 0, is a valid Symbol.
type Symbol byte

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)
