package asn1

import (
	"bytes"
	"testing"
)

func TestPrintableStringRoundTrip(t *testing.T) {
	in, err := NewPrintableString("Kestrel CA")
	if err != nil {
		t.Fatalf("NewPrintableString: %v", err)
	}
	enc, err := Marshal(in, WithRule(DER))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := append([]byte{0x13, 0x0A}, []byte("Kestrel CA")...)
	if !bytes.Equal(enc, want) {
		t.Errorf("got % X, want % X", enc, want)
	}

	var out PrintableString
	if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("got %q, want %q", out, in)
	}
}

func TestPrintableStringRejectsInvalidAlphabet(t *testing.T) {
	if _, err := NewPrintableString("under_score"); err == nil {
		t.Errorf("expected underscore to be rejected from PrintableString alphabet")
	}
}

func TestNumericStringAcceptsDigitsAndSpace(t *testing.T) {
	if _, err := NewNumericString("123 456"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := NewNumericString("12a"); err == nil {
		t.Errorf("expected letter to be rejected from NumericString alphabet")
	}
}

func TestIA5StringAcceptsASCII(t *testing.T) {
	if _, err := NewIA5String("user@example.com"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := NewIA5String(string([]byte{0xFF})); err == nil {
		t.Errorf("expected byte 0xFF to be rejected from IA5String alphabet")
	}
}

func TestUTF8StringRoundTrip(t *testing.T) {
	in, err := NewUTF8String("héllo")
	if err != nil {
		t.Fatalf("NewUTF8String: %v", err)
	}
	enc, err := Marshal(in, WithRule(DER))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out UTF8String
	if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("got %q, want %q", out, in)
	}
}

func TestUTF8StringRejectsInvalidEncoding(t *testing.T) {
	data := []byte{0x0C, 0x02, 0xFF, 0xFE}
	var out UTF8String
	if _, err := Unmarshal(data, &out, WithRule(BER)); err == nil {
		t.Errorf("expected invalid UTF-8 content to be rejected")
	}
}

func TestBMPStringRoundTrip(t *testing.T) {
	in, err := NewBMPString("abc")
	if err != nil {
		t.Fatalf("NewBMPString: %v", err)
	}
	enc, err := Marshal(in, WithRule(DER))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{0x1E, 0x06, 0x00, 'a', 0x00, 'b', 0x00, 'c'}
	if !bytes.Equal(enc, want) {
		t.Errorf("got % X, want % X", enc, want)
	}
	var out BMPString
	if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("got %q, want %q", out, in)
	}
}
