package strcoder

import "testing"

func TestFromUTF16ASCII(t *testing.T) {
	units := []uint16{'B', 'o', 'x', '0', '0', '1'}
	if got := FromUTF16(units); got != "Box001" {
		t.Errorf("got %q, want %q", got, "Box001")
	}
}

func TestFromUTF16StopsAtNullTerminator(t *testing.T) {
	units := []uint16{'a', 'b', 0, 'c', 'd'}
	if got := FromUTF16(units); got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
}

func TestFromUTF16Empty(t *testing.T) {
	if got := FromUTF16(nil); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
	if got := FromUTF16([]uint16{0}); got != "" {
		t.Errorf("got %q, want empty string for a leading terminator", got)
	}
}
