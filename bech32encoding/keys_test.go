package bech32encoding

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"lukechampine.com/frand"

	"realy.lol/nostrcore/chk"
)

// vectors from NIP-19
const (
	nip19Npub   = "npub10elfcs4fr0l0r8af98jlmgdh9c8tcxjvz9qkw038js35mp4dma8qzvjptg"
	nip19PubHex = "7e7e9c42a91bfef19fa929e5fda1b72e0ebc1a4c1141673e2794234d86addf4e"
	nip19Nsec   = "nsec1vl029mgpspedva04g90vltkh6fvh240zqtv9k0t9af8935ke9laqsnlfe5"
	nip19SecHex = "67dea2ed018072d675f5415ecfaed7d2597555e202d85b3d65ea4e58d2d92ffa"
)

func TestConvertBits(t *testing.T) {
	var err error
	var b5, b8, b58 []byte
	b8 = make([]byte, 32)
	for range 1009 {
		frand.Read(b8)
		if b5, err = ConvertForBech32(b8); chk.E(err) {
			t.Fatal(err)
		}
		if len(b5) != 52 {
			t.Fatalf("32 bytes should expand to 52 groups, got %d", len(b5))
		}
		if b58, err = ConvertFromBech32(b5); chk.E(err) {
			t.Fatal(err)
		}
		if !bytes.Equal(b8, b58) {
			t.Fatalf("round trip mismatch %x %x", b8, b58)
		}
	}
}

func TestNIP19Vectors(t *testing.T) {
	pub, _ := hex.DecodeString(nip19PubHex)
	npub, err := PublicKeyToNpub(pub)
	if chk.E(err) {
		t.Fatal(err)
	}
	if npub != nip19Npub {
		t.Fatalf("got %s want %s", npub, nip19Npub)
	}
	sec, _ := hex.DecodeString(nip19SecHex)
	nsec, err := SecretKeyToNsec(sec)
	if chk.E(err) {
		t.Fatal(err)
	}
	if nsec != nip19Nsec {
		t.Fatalf("got %s want %s", nsec, nip19Nsec)
	}
	var back []byte
	if back, err = NpubToPublicKey(nip19Npub); chk.E(err) {
		t.Fatal(err)
	}
	if !bytes.Equal(back, pub) {
		t.Fatalf("decoded %x want %x", back, pub)
	}
	if back, err = NsecToSecretKey(nip19Nsec); chk.E(err) {
		t.Fatal(err)
	}
	if !bytes.Equal(back, sec) {
		t.Fatalf("decoded %x want %x", back, sec)
	}
}

func TestRandomRoundTrip(t *testing.T) {
	for range 1000 {
		b := frand.Bytes(32)
		for _, hrp := range []string{NpubHRP, NsecHRP, NoteHRP} {
			enc, err := Encode(hrp, b)
			if chk.E(err) {
				t.Fatal(err)
			}
			if !strings.HasPrefix(enc, hrp+"1") || len(enc) != 63 {
				t.Fatalf("unexpected encoding %s", enc)
			}
			dec, err := Decode(hrp, enc)
			if chk.E(err) {
				t.Fatal(err)
			}
			if !bytes.Equal(dec, b) {
				t.Fatalf("round trip mismatch %x %x", b, dec)
			}
		}
	}
}

func TestDecodeRejects(t *testing.T) {
	// flip the last checksum character
	last := nip19Npub[len(nip19Npub)-1]
	repl := byte('q')
	if last == 'q' {
		repl = 'p'
	}
	badChecksum := nip19Npub[:len(nip19Npub)-1] + string(repl)
	short, _ := ConvertForBech32(make([]byte, 31))
	shortEnc, _ := encodeRaw(NpubHRP, short)
	for name, in := range map[string]string{
		"checksum":   badChecksum,
		"wrong hrp":  nip19Nsec,
		"mixed case": "N" + nip19Npub[1:],
		"empty":      "",
		"short":      shortEnc,
		"hex":        nip19PubHex,
	} {
		if _, err := NpubToPublicKey(in); err == nil {
			t.Errorf("%s: expected error decoding %q", name, in)
		}
	}
	if _, err := Encode(NpubHRP, make([]byte, 33)); err == nil {
		t.Error("expected error encoding 33 bytes")
	}
}

func TestUpperCaseAccepted(t *testing.T) {
	b, err := NpubToPublicKey(strings.ToUpper(nip19Npub))
	if chk.E(err) {
		t.Fatal(err)
	}
	if hex.EncodeToString(b) != nip19PubHex {
		t.Fatalf("got %x", b)
	}
}
