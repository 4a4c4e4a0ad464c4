package encode

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestZstdRoundTrip(t *testing.T) {
	buf := gradientBuffer(16, 8)

	var plain bytes.Buffer
	if err := (PPM{}).Encode(&plain, buf); err != nil {
		t.Fatal(err)
	}

	var packed bytes.Buffer
	if err := (Zstd{Inner: PPM{}}).Encode(&packed, buf); err != nil {
		t.Fatal(err)
	}

	dec, err := zstd.NewReader(&packed)
	if err != nil {
		t.Fatal(err)
	}
	defer dec.Close()
	got, err := io.ReadAll(dec)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if !bytes.Equal(got, plain.Bytes()) {
		t.Error("decompressed output differs from the plain PPM")
	}
}

func TestByName(t *testing.T) {
	for _, f := range Formats {
		if _, err := ByName(f, 0); err != nil {
			t.Errorf("ByName(%q): %v", f, err)
		}
	}
	if _, err := ByName("gif", 0); err == nil {
		t.Error("ByName(gif) succeeded, want error")
	}
}
