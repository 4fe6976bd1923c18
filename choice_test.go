package asn1

import (
	"reflect"
	"testing"
)

type scenario5Choice struct {
	ChoiceValue
}

func (scenario5Choice) ChoiceSpec() ChoiceSpec {
	return ChoiceSpec{
		Mode: ChoiceUntagged,
		Alternatives: []Alternative{
			{Type: reflect.TypeOf(OctetString(nil))},
			{Type: reflect.TypeOf(Integer{})},
		},
	}
}

func TestChoiceScenario5(t *testing.T) {
	var out scenario5Choice
	if _, err := Unmarshal([]byte{0x02, 0x01, 0x2A}, &out, WithRule(BER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	i, ok := out.Value.(Integer)
	if !ok || i.Native() != 42 {
		t.Errorf("got %#v, want Integer(42)", out.Value)
	}

	var out2 scenario5Choice
	_, err := Unmarshal([]byte{0x05, 0x00}, &out2, WithRule(BER))
	if err == nil {
		t.Fatalf("expected NoMatchingVariant error")
	}
	asErr, ok := err.(*Error)
	if !ok || asErr.Kind != KindNoMatchingVariant {
		t.Errorf("expected KindNoMatchingVariant, got %v", err)
	}
}

func TestChoiceEncodeRoundTrip(t *testing.T) {
	in := scenario5Choice{ChoiceValue{Value: OctetString{0x01, 0x02}}}
	enc, err := Marshal(in, WithRule(DER))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out scenario5Choice
	if _, err := Unmarshal(enc, &out, WithRule(DER)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	o, ok := out.Value.(OctetString)
	if !ok || string(o) != "\x01\x02" {
		t.Errorf("got %#v, want OctetString{0x01,0x02}", out.Value)
	}
}

func TestChoiceRejectsOverlappingTags(t *testing.T) {
	spec := ChoiceSpec{
		Mode: ChoiceUntagged,
		Alternatives: []Alternative{
			{Type: reflect.TypeOf(Integer{})},
			{Type: reflect.TypeOf(Integer{})},
		},
	}
	if _, err := spec.tagPairs(); err == nil {
		t.Errorf("expected overlapping-tag error for two INTEGER alternatives")
	}
}
