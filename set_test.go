package asn1

import (
	"reflect"
	"testing"
)

type scenario6Set struct {
	A Integer
	B Boolean
}

func TestSetScenario6(t *testing.T) {
	// spec.md §8 concrete scenario 6: content of a SET{INTEGER, BOOLEAN}
	// with children out of ascending tag order (BOOLEAN tag 1 before
	// INTEGER tag 2 would be canonical; here INTEGER precedes BOOLEAN).
	content := []byte{0x02, 0x01, 0x01, 0x01, 0x01, 0xFF}

	var der scenario6Set
	err := decodeSetContent(reflect.ValueOf(&der).Elem(), NewCursor(content), DER)
	if err == nil {
		t.Fatalf("expected DER to reject non-canonical SET child order")
	}
	if asErr, ok := err.(*Error); !ok || asErr.Kind != KindNonCanonicalOrder {
		t.Errorf("expected KindNonCanonicalOrder, got %v", err)
	}

	var ber scenario6Set
	if err := decodeSetContent(reflect.ValueOf(&ber).Elem(), NewCursor(content), BER); err != nil {
		t.Fatalf("expected BER to accept any child order: %v", err)
	}
	if ber.A.Native() != 1 || bool(ber.B) != true {
		t.Errorf("got %+v, want A=1 B=true", ber)
	}
}

func TestSetEncodeSortsChildrenUnderDER(t *testing.T) {
	a, _ := NewInteger(1)
	in := scenario6Set{A: a, B: Boolean(true)}
	content, err := encodeSetContent(reflect.ValueOf(&in).Elem(), DER)
	if err != nil {
		t.Fatalf("encodeSetContent: %v", err)
	}
	// BOOLEAN (tag 1) must sort before INTEGER (tag 2) under DER.
	want := []byte{0x01, 0x01, 0xFF, 0x02, 0x01, 0x01}
	if len(content) != len(want) || content[0] != 0x01 {
		t.Errorf("got % X, want children sorted ascending by tag: % X", content, want)
	}
}

func TestSetDuplicateFieldRejected(t *testing.T) {
	content := []byte{0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	var out struct {
		A Integer
	}
	err := decodeSetContent(reflect.ValueOf(&out).Elem(), NewCursor(content), BER)
	if err == nil {
		t.Fatalf("expected error decoding SET with two children matching one field")
	}
}
