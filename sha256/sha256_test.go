package sha256

import (
	"encoding/hex"
	"testing"
)

func TestSum256(t *testing.T) {
	for _, v := range []struct{ in, out string }{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	} {
		h := Sum256([]byte(v.in))
		if hex.EncodeToString(h[:]) != v.out {
			t.Fatalf("sha256(%q) got %x want %s", v.in, h, v.out)
		}
		s := New()
		s.Write([]byte(v.in))
		if hex.EncodeToString(s.Sum(nil)) != v.out {
			t.Fatalf("streaming sha256(%q) mismatch", v.in)
		}
	}
}
