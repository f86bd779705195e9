package huffman

import (
	"strings"
	"testing"
)

func TestCount(t *testing.T) {
	table := Count([]byte("aaabbc"))

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tFreq(97) = 3\n",
		"\tFreq(98) = 2\n",
		"\tFreq(99) = 1\n",
		"}\n",
	}, "")
	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if table.Len() != 3 {
		t.Errorf("expected 3 symbols, got %d", table.Len())
	}
	if table.Total() != 6 {
		t.Errorf("expected total 6, got %d", table.Total())
	}
	if table.Freq('a') != 3 || table.Freq('z') != 0 {
		t.Errorf("wrong counts: a=%d z=%d", table.Freq('a'), table.Freq('z'))
	}

	expectString := "(frequency table with 3 symbols, 6 total)"
	if actual := table.String(); actual != expectString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actual)
	}
}

func TestCount_Empty(t *testing.T) {
	table := Count(nil)
	if !table.IsEmpty() || table.Len() != 0 || len(table.Symbols()) != 0 {
		t.Errorf("expected empty table, got %v", table)
	}
}

func TestCounter(t *testing.T) {
	input := []byte("the quick brown fox jumps over the lazy dog")

	var c Counter
	for i := 0; i < len(input); i += 5 {
		end := i + 5
		if end > len(input) {
			end = len(input)
		}
		n, err := c.Write(input[i:end])
		if err != nil || n != end-i {
			t.Fatalf("Write returned (%d, %v)", n, err)
		}
	}

	if c.Table() != Count(input) {
		t.Errorf("streamed table differs from Count:\n\texpect: %v\n\tactual: %v", Count(input), c.Table())
	}

	c.Reset()
	if table := c.Table(); !table.IsEmpty() {
		t.Errorf("expected empty table after Reset")
	}
}
