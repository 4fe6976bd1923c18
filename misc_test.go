package asn1

import (
	"bytes"
	"testing"
)

func TestNullRoundTrip(t *testing.T) {
	enc, err := Marshal(Null{}, WithRule(DER))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(enc, []byte{0x05, 0x00}) {
		t.Errorf("got % X, want 05 00", enc)
	}
	var out Null
	if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
}

func TestNullRejectsNonEmptyContent(t *testing.T) {
	var out Null
	if _, err := Unmarshal([]byte{0x05, 0x01, 0x00}, &out, WithRule(BER)); err == nil {
		t.Errorf("expected non-empty NULL content to be rejected")
	}
}

func TestEnumeratedRoundTrip(t *testing.T) {
	in, err := NewEnumerated(2)
	if err != nil {
		t.Fatalf("NewEnumerated: %v", err)
	}
	enc, err := Marshal(in, WithRule(DER))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(enc, []byte{0x0A, 0x01, 0x02}) {
		t.Errorf("got % X, want 0A 01 02", enc)
	}
	var out Enumerated
	if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if Integer(out).Native() != 2 {
		t.Errorf("got %s, want 2", Integer(out))
	}
}

func TestOctetStringRoundTrip(t *testing.T) {
	in := OctetString{0xDE, 0xAD, 0xBE, 0xEF}
	enc, err := Marshal(in, WithRule(DER))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{0x04, 0x04, 0xDE, 0xAD, 0xBE, 0xEF}
	if !bytes.Equal(enc, want) {
		t.Errorf("got % X, want % X", enc, want)
	}
	var out OctetString
	if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Errorf("got % X, want % X", out, in)
	}
}

func TestVisibleStringAndT61StringAlphabets(t *testing.T) {
	if _, err := NewVisibleString("hello world"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := NewVisibleString(string([]byte{0x01})); err == nil {
		t.Errorf("expected control byte to be rejected from VisibleString alphabet")
	}
	if _, err := NewT61String(string([]byte{0xA5})); err != nil {
		t.Errorf("unexpected error for T61 upper-range byte: %v", err)
	}
}

func TestUniversalStringRoundTrip(t *testing.T) {
	in, err := NewUniversalString("abc")
	if err != nil {
		t.Fatalf("NewUniversalString: %v", err)
	}
	enc, err := Marshal(in, WithRule(DER))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := []byte{0x1C, 0x0C, 0, 0, 0, 'a', 0, 0, 0, 'b', 0, 0, 0, 'c'}
	if !bytes.Equal(enc, want) {
		t.Errorf("got % X, want % X", enc, want)
	}
	var out UniversalString
	if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("got %q, want %q", out, in)
	}
}

func TestObjectDescriptorRoundTrip(t *testing.T) {
	in, err := NewObjectDescriptor("a test descriptor")
	if err != nil {
		t.Fatalf("NewObjectDescriptor: %v", err)
	}
	enc, err := Marshal(in, WithRule(DER))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out ObjectDescriptor
	if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("got %q, want %q", out, in)
	}
}
