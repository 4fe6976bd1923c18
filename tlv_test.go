package asn1

import (
	"bytes"
	"testing"
)

func TestIdentifierHighTagNumberForm(t *testing.T) {
	var dst []byte
	dst = encodeIdentifier(dst, ClassContextSpecific, 48, true)
	class, tag, compound, consumed, err := decodeIdentifier(NewCursor(dst))
	if err != nil {
		t.Fatalf("decodeIdentifier: %v", err)
	}
	if class != ClassContextSpecific || tag != 48 || !compound || consumed != len(dst) {
		t.Errorf("got class=%d tag=%d compound=%v consumed=%d, want class=%d tag=48 compound=true consumed=%d",
			class, tag, compound, consumed, ClassContextSpecific, len(dst))
	}
}

func TestIdentifierRejectsNonMinimalHighTagForm(t *testing.T) {
	// tag 30 (< 31) encoded in high-tag-number form is non-canonical.
	data := []byte{0x1F, 0x1E}
	if _, _, _, _, err := decodeIdentifier(NewCursor(data)); err == nil {
		t.Errorf("expected non-canonical high-tag-number form to be rejected")
	}
}

func TestReadTLVIndefiniteLength(t *testing.T) {
	// OCTET STRING, constructed, indefinite length, one child chunk,
	// then the end-of-contents sentinel.
	data := []byte{
		0x24, 0x80, // OCTET STRING, constructed, indefinite length
		0x04, 0x02, 0xAA, 0xBB, // primitive OCTET STRING chunk
		0x00, 0x00, // end-of-contents
	}
	tlv, rest, err := ReadTLV(NewCursor(data), BER)
	if err != nil {
		t.Fatalf("ReadTLV: %v", err)
	}
	if !rest.IsEmpty() {
		t.Errorf("expected cursor fully consumed, %d bytes remain", rest.Len())
	}
	if !bytes.Equal(tlv.Value, []byte{0x04, 0x02, 0xAA, 0xBB}) {
		t.Errorf("got content % X", tlv.Value)
	}
	if tlv.Tag != TagOctetString || !tlv.Compound {
		t.Errorf("got tag=%d compound=%v", tlv.Tag, tlv.Compound)
	}
}

func TestReadTLVRejectsIndefiniteLengthUnderDER(t *testing.T) {
	data := []byte{0x24, 0x80, 0x04, 0x02, 0xAA, 0xBB, 0x00, 0x00}
	if _, _, err := ReadTLV(NewCursor(data), DER); err == nil {
		t.Errorf("expected DER to reject indefinite length")
	}
}

func TestReadTLVRejectsNonCanonicalLengthUnderDER(t *testing.T) {
	// long-form length of 5 (0x81 0x05) when 5 fits in short form.
	data := []byte{0x04, 0x81, 0x05, 1, 2, 3, 4, 5}
	if _, _, err := ReadTLV(NewCursor(data), DER); err == nil {
		t.Errorf("expected DER to reject non-canonical long-form length")
	}
	tlv, _, err := ReadTLV(NewCursor(data), BER)
	if err != nil {
		t.Fatalf("expected BER to accept non-canonical long-form length: %v", err)
	}
	if !bytes.Equal(tlv.Value, []byte{1, 2, 3, 4, 5}) {
		t.Errorf("got content % X", tlv.Value)
	}
}

func TestWriteTLVIndefiniteUnderBER(t *testing.T) {
	enc := WriteTLV(nil, ClassUniversal, TagOctetString, true, []byte{0xAA, 0xBB}, BER, true)
	want := []byte{0x24, 0x80, 0xAA, 0xBB, 0x00, 0x00}
	if !bytes.Equal(enc, want) {
		t.Errorf("got % X, want % X", enc, want)
	}
}
