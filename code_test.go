package huffman

import (
	"testing"
)

func TestParseCode(t *testing.T) {
	type testRow struct {
		input string
		size  byte
		bits  uint64
	}

	testData := [...]testRow{
		{input: "", size: 0, bits: 0x00},
		{input: "0", size: 1, bits: 0x00},
		{input: "1", size: 1, bits: 0x01},
		{input: "10", size: 2, bits: 0x02},
		{input: "0111", size: 4, bits: 0x07},
		{input: "1100", size: 4, bits: 0x0c},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			hc, err := ParseCode(row.input)
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			if hc != MakeCode(row.size, row.bits) {
				t.Errorf("expected %s, got %s", MakeCode(row.size, row.bits), hc)
			}
			if expect := `"` + row.input + `"`; hc.String() != expect {
				t.Errorf("expected string %s, got %s", expect, hc.String())
			}
		})
	}

	if _, err := ParseCode("012"); err == nil {
		t.Errorf("expected error for invalid character")
	}
}

func TestCode_Bit(t *testing.T) {
	hc := MakeCode(4, 0x0b) // "1011"
	expect := []uint{1, 0, 1, 1}
	for i, bit := range expect {
		if actual := hc.Bit(byte(i)); actual != bit {
			t.Errorf("bit %d: expected %d, got %d", i, bit, actual)
		}
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{code: "1011", prefix: "", expect: true},
		{code: "1011", prefix: "1", expect: true},
		{code: "1011", prefix: "10", expect: true},
		{code: "1011", prefix: "1011", expect: true},
		{code: "1011", prefix: "11", expect: false},
		{code: "1011", prefix: "10110", expect: false},
		{code: "0", prefix: "1", expect: false},
	}
	for _, row := range testData {
		t.Run(row.code+"/"+row.prefix, func(t *testing.T) {
			hc, _ := ParseCode(row.code)
			prefix, _ := ParseCode(row.prefix)
			if actual := hc.HasPrefix(prefix); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}
