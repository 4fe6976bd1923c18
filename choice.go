package asn1

/*
choice.go implements component 4.F, the CHOICE dispatcher, in its
three modes (untagged, auto tagged-explicit, auto tagged-implicit).

A CHOICE is declared as a small wrapper struct embedding ChoiceValue
and implementing ChoiceSpec():

	type Password struct {
		asn1.ChoiceValue
	}
	func (Password) ChoiceSpec() asn1.ChoiceSpec {
		return asn1.ChoiceSpec{
			Mode: asn1.ChoiceUntagged,
			Alternatives: []asn1.Alternative{
				{Type: reflect.TypeOf(UTF8String(""))},
				{Type: reflect.TypeOf(OctetString(nil))},
			},
		}
	}

Grounded on the teacher's choice.go registry (Choice/Choices), adapted
from a runtime Register call to a static ChoiceSpec() method so
tag-uniqueness (the structural invariant spec.md §9 calls out) is
validated every time the type is encoded or decoded, with a
deterministic error rather than relying on a separate registration
step the caller might forget.
*/

import "reflect"

// ChoiceMode selects how a CHOICE's alternatives are distinguished on
// the wire (spec.md §4.F).
type ChoiceMode uint8

const (
	// ChoiceUntagged requires each alternative to carry a distinct
	// native ASN.1 tag of its own.
	ChoiceUntagged ChoiceMode = iota
	// ChoiceAutoExplicit wraps alternative i (0-indexed, declaration
	// order) as CONTEXT-SPECIFIC [i] EXPLICIT.
	ChoiceAutoExplicit
	// ChoiceAutoImplicit wraps alternative i as CONTEXT-SPECIFIC [i]
	// IMPLICIT.
	ChoiceAutoImplicit
)

// Alternative names one CHOICE variant's Go type.
type Alternative struct {
	Type reflect.Type
}

// ChoiceSpec describes a CHOICE type's variants and tagging mode.
type ChoiceSpec struct {
	Mode         ChoiceMode
	Alternatives []Alternative
}

// ChoiceType is implemented by every CHOICE wrapper type.
type ChoiceType interface {
	ChoiceSpec() ChoiceSpec
}

// ChoiceValue is embedded by every CHOICE wrapper type to hold the
// selected alternative's value.
type ChoiceValue struct {
	Value any
}

func (s ChoiceSpec) tagPairs() ([]tagPair, error) {
	var out []tagPair
	switch s.Mode {
	case ChoiceUntagged:
		for _, a := range s.Alternatives {
			pairs, err := fieldTags(a.Type, Options{})
			if err != nil {
				return nil, err
			}
			out = append(out, pairs...)
		}
	case ChoiceAutoExplicit, ChoiceAutoImplicit:
		for i := range s.Alternatives {
			out = append(out, tagPair{ClassContextSpecific, i})
		}
	default:
		return nil, newErrf(KindUnsupported, 0, "unknown CHOICE mode %d", s.Mode)
	}

	seen := make(map[tagPair]bool, len(out))
	for _, p := range out {
		if seen[p] {
			return nil, newErrf(KindUnsupported, 0, "CHOICE declares overlapping tag %s/%s across alternatives", ClassName(p.Class), TagName(p.Tag))
		}
		seen[p] = true
	}
	return out, nil
}

func encodeChoice(v reflect.Value, rule EncodingRule, opts Options) ([]byte, error) {
	ct := v.Interface().(ChoiceType)
	spec := ct.ChoiceSpec()
	if _, err := spec.tagPairs(); err != nil {
		return nil, err
	}

	if opts.HasTag() && !opts.Explicit {
		return nil, newErr(KindUnsupported, 0, "IMPLICIT tagging of a CHOICE field is not permitted (X.690 §31.2.7); use explicit")
	}

	chosenField := v.FieldByName("Value")
	if !chosenField.IsValid() || chosenField.IsNil() {
		return nil, newErr(KindMissingRequiredField, 0, "CHOICE has no alternative selected")
	}
	chosen := reflect.New(chosenField.Elem().Type()).Elem()
	chosen.Set(chosenField.Elem())

	altIdx := -1
	for i, a := range spec.Alternatives {
		if a.Type == chosen.Type() {
			altIdx = i
			break
		}
	}
	if altIdx < 0 {
		return nil, newErrf(KindNoMatchingVariant, 0, "CHOICE value of type %s matches no declared alternative", chosen.Type())
	}

	var altOpts Options
	switch spec.Mode {
	case ChoiceAutoExplicit:
		altOpts.SetTag(altIdx)
		altOpts.SetClass(ClassContextSpecific)
		altOpts.Explicit = true
	case ChoiceAutoImplicit:
		altOpts.SetTag(altIdx)
		altOpts.SetClass(ClassContextSpecific)
		altOpts.Explicit = false
	}

	inner, err := encodeField(chosen, rule, altOpts)
	if err != nil {
		return nil, err
	}

	if opts.HasTag() {
		return WriteTLV(nil, opts.Class(), opts.Tag(), true, inner, rule, false), nil
	}
	return inner, nil
}

// decodeChoiceTLV selects and decodes the alternative matching tlv's
// class/tag, per spec.md §4.F's three modes.
func decodeChoiceTLV(rt reflect.Type, tlv TLV, rule EncodingRule) (reflect.Value, error) {
	spec := reflect.New(rt).Elem().Interface().(ChoiceType).ChoiceSpec()
	if _, err := spec.tagPairs(); err != nil {
		return reflect.Value{}, err
	}

	for i, a := range spec.Alternatives {
		var val reflect.Value
		var matched bool
		var err error

		switch spec.Mode {
		case ChoiceUntagged:
			pairs, terr := fieldTags(a.Type, Options{})
			if terr != nil {
				return reflect.Value{}, terr
			}
			if matchesAny(pairs, tlv.Class, tlv.Tag) {
				matched = true
				val, err = decodeContentAs(a.Type, tlv, rule, Options{}, false)
			}
		case ChoiceAutoExplicit:
			if tlv.Class == ClassContextSpecific && tlv.Tag == i {
				matched = true
				if !tlv.Compound {
					err = newErr(KindInvalidHeader, 0, "CHOICE alternative tag requires EXPLICIT (constructed) outer TLV")
					break
				}
				var rest Cursor
				val, rest, err = decodeField(NewCursor(tlv.Value), a.Type, rule, Options{})
				if err == nil && !rest.IsEmpty() {
					err = newErr(KindUnexpectedTrailing, rest.Position(), "trailing bytes inside CHOICE EXPLICIT wrapper")
				}
			}
		case ChoiceAutoImplicit:
			if tlv.Class == ClassContextSpecific && tlv.Tag == i {
				matched = true
				val, err = decodeContentAs(a.Type, tlv, rule, Options{}, true)
			}
		}

		if matched {
			if err != nil {
				return reflect.Value{}, err
			}
			out := reflect.New(rt).Elem()
			out.FieldByName("Value").Set(reflect.ValueOf(val.Interface()))
			return out, nil
		}
	}

	return reflect.Value{}, NoMatchingVariantError(0, tlv.Class, tlv.Tag)
}
