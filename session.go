package huffman

// Encoded is the result of one encode session: the packed bits, the number
// of padding bits at the end of Data, and the tree needed to decode them.
type Encoded struct {
	Data    []byte
	Padding int
	Tree    *Tree
	Codes   CodeTable
}

// Encode runs the whole encode pipeline over data: Count, BuildTree,
// AssignCodes, and Pack.  It fails with ErrEmptyInput if data is empty.
func Encode(data []byte) (*Encoded, error) {
	t, err := BuildTree(Count(data))
	if err != nil {
		return nil, err
	}
	return EncodeWithTree(data, t)
}

// EncodeWithTree is like Encode, but uses a tree that the caller has already
// built, e.g. with Canonicalize.
func EncodeWithTree(data []byte, t *Tree) (*Encoded, error) {
	codes, err := AssignCodes(t)
	if err != nil {
		return nil, err
	}
	packed, padding, err := Pack(data, &codes)
	if err != nil {
		return nil, err
	}
	return &Encoded{Data: packed, Padding: padding, Tree: t, Codes: codes}, nil
}

// Decode reverses Encode.
func (enc *Encoded) Decode() ([]byte, error) {
	return Decode(enc.Data, enc.Padding, enc.Tree)
}

// BitLength returns the number of meaningful bits in Data.
func (enc *Encoded) BitLength() int {
	return len(enc.Data)*8 - enc.Padding
}
