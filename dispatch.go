package asn1

/*
dispatch.go is the polymorphic typed codec (component 4.B "dispatch on
declared type" / component 4.C–4.F combined): given a reflect.Type and
a set of Options (carrying any EXPLICIT/IMPLICIT/class override), it
decides whether the declared type is a Primitive, a CHOICE, a
SEQUENCE/SET (struct), or a SEQUENCE-OF/SET-OF (slice), and dispatches
accordingly. This is the "capability bundle per declared type" that
spec.md §9 describes language-agnostically; in Go it's realized via
type assertion against small interfaces plus reflect.Kind switches,
rather than per-type code generation (see SPEC_FULL.md's derive
front-end note).
*/

import "reflect"

var primitiveIfaceType = reflect.TypeOf((*Primitive)(nil)).Elem()
var choiceIfaceType = reflect.TypeOf((*ChoiceType)(nil)).Elem()

func implementsPrimitive(rt reflect.Type) bool {
	return reflect.PointerTo(rt).Implements(primitiveIfaceType)
}

func implementsChoice(rt reflect.Type) bool {
	return reflect.PointerTo(rt).Implements(choiceIfaceType) || rt.Implements(choiceIfaceType)
}

func choiceSpecOf(rt reflect.Type) ChoiceSpec {
	inst := reflect.New(rt).Elem().Interface()
	if ct, ok := inst.(ChoiceType); ok {
		return ct.ChoiceSpec()
	}
	// rt implements it via pointer receiver only
	return reflect.New(rt).Interface().(ChoiceType).ChoiceSpec()
}

// tagPair is a bare (class, tag) used for peek-and-match decisions —
// the constructed composer and CHOICE dispatcher never need the
// compound bit to decide presence, only class+tag (spec.md §4.E).
type tagPair struct{ Class, Tag int }

// fieldTags returns every (class, tag) pair under which the declared
// type rt may legally appear on the wire, given opts. A tag override
// in opts always collapses this to a single pair (the wrapper's own
// tag is the only thing ever seen on the wire). Absent an override,
// composite types contribute their own universal tag, and CHOICE
// types contribute the union of their alternatives' tags.
func fieldTags(rt reflect.Type, opts Options) ([]tagPair, error) {
	if opts.HasTag() {
		return []tagPair{{opts.Class(), opts.Tag()}}, nil
	}
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	switch {
	case implementsChoice(rt):
		spec := choiceSpecOf(rt)
		return spec.tagPairs()
	case implementsPrimitive(rt):
		inst := reflect.New(rt).Interface().(Primitive)
		class, tag := ClassUniversal, inst.Tag()
		if dt, ok := inst.(DynamicTag); ok {
			class, tag = dt.DynamicTag()
		}
		return []tagPair{{class, tag}}, nil
	case rt.Kind() == reflect.Struct:
		tag := TagSequence
		if opts.Set {
			tag = TagSet
		}
		return []tagPair{{ClassUniversal, tag}}, nil
	case rt.Kind() == reflect.Slice:
		tag := TagSequence
		if opts.Set {
			tag = TagSet
		}
		return []tagPair{{ClassUniversal, tag}}, nil
	}
	return nil, newErrf(KindUnsupported, 0, "unsupported declared type %s", rt)
}

func matchesAny(pairs []tagPair, class, tag int) bool {
	for _, p := range pairs {
		if p.Class == class && p.Tag == tag {
			return true
		}
	}
	return false
}

// encodeField is the encode-direction entry point for any declared
// field type (component 4.D wrapping, delegating to 4.C/4.E/4.F for
// content).
func encodeField(v reflect.Value, rule EncodingRule, opts Options) ([]byte, error) {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, newErr(KindMissingRequiredField, 0, "nil pointer for required field")
		}
		v = v.Elem()
	}

	rt := v.Type()
	switch {
	case implementsChoice(rt):
		return encodeChoice(v, rule, opts)
	case implementsPrimitive(rt):
		p := v.Addr().Interface().(Primitive)
		content, err := p.encodeContent(opts)
		if err != nil {
			return nil, err
		}
		class, tag := ClassUniversal, p.Tag()
		if dt, ok := p.(DynamicTag); ok {
			class, tag = dt.DynamicTag()
		}
		return wrapEncoded(class, tag, false, content, rule, opts)
	case rt.Kind() == reflect.Struct:
		var content []byte
		var err error
		if opts.Set {
			content, err = encodeSetContent(v, rule)
		} else {
			content, err = encodeSequenceContent(v, rule)
		}
		if err != nil {
			return nil, err
		}
		tag := TagSequence
		if opts.Set {
			tag = TagSet
		}
		return wrapEncoded(ClassUniversal, tag, true, content, rule, opts)
	case rt.Kind() == reflect.Slice:
		content, err := encodeRepeated(v, rule, opts)
		if err != nil {
			return nil, err
		}
		tag := TagSequence
		if opts.Set {
			tag = TagSet
		}
		return wrapEncoded(ClassUniversal, tag, true, content, rule, opts)
	}
	return nil, newErrf(KindUnsupported, 0, "unsupported declared type %s", rt)
}

// wrapEncoded applies any tag override from opts (component 4.D): no
// override emits the native header; EXPLICIT nests a fresh outer TLV
// around the native encoding; IMPLICIT substitutes class/tag in place
// while keeping the native compound bit.
func wrapEncoded(class, tag int, compound bool, content []byte, rule EncodingRule, opts Options) ([]byte, error) {
	if !opts.HasTag() {
		return WriteTLV(nil, class, tag, compound, content, rule, false), nil
	}
	if opts.Explicit {
		inner := WriteTLV(nil, class, tag, compound, content, rule, false)
		return WriteTLV(nil, opts.Class(), opts.Tag(), true, inner, rule, false), nil
	}
	return WriteTLV(nil, opts.Class(), opts.Tag(), compound, content, rule, false), nil
}

// decodeField is the decode-direction entry point, the inverse of
// encodeField. It reads exactly one outer TLV from c.
func decodeField(c Cursor, rt reflect.Type, rule EncodingRule, opts Options) (reflect.Value, Cursor, error) {
	tlv, rest, err := ReadTLV(c, rule)
	if err != nil {
		return reflect.Value{}, c, err
	}

	if opts.HasTag() {
		if tlv.Class != opts.Class() || tlv.Tag != opts.Tag() {
			return reflect.Value{}, c, UnexpectedTagError(c.Position(), opts.Class(), opts.Tag(), tlv.Class, tlv.Tag)
		}
		if opts.Explicit {
			if !tlv.Compound {
				return reflect.Value{}, c, newErr(KindInvalidHeader, c.Position(), "EXPLICIT tag requires constructed outer TLV")
			}
			inner := NewCursor(tlv.Value)
			val, innerRest, err := decodeField(inner, rt, rule, Options{Set: opts.Set})
			if err != nil {
				return reflect.Value{}, c, err
			}
			if !innerRest.IsEmpty() {
				return reflect.Value{}, c, newErr(KindUnexpectedTrailing, innerRest.Position(), "trailing bytes inside EXPLICIT wrapper")
			}
			return val, rest, nil
		}
		if implementsChoice(derefType(rt)) {
			return reflect.Value{}, c, newErr(KindUnsupported, c.Position(), "IMPLICIT tagging of a CHOICE field is not permitted (X.690 §31.2.7); use explicit")
		}
		val, err := decodeContentAs(rt, tlv, rule, opts, true)
		return val, rest, err
	}

	val, err := decodeContentAs(rt, tlv, rule, opts, false)
	return val, rest, err
}

// decodeContentAs builds a value of declared type rt from an already
// fully-framed TLV. skipTagCheck is true only when the caller (an
// IMPLICIT wrapper) has already validated class/tag against an
// override; the compound-bit structural check always applies.
func decodeContentAs(rt reflect.Type, tlv TLV, rule EncodingRule, opts Options, skipTagCheck bool) (reflect.Value, error) {
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	switch {
	case implementsChoice(rt):
		return decodeChoiceTLV(rt, tlv, rule)
	case implementsPrimitive(rt):
		ptr := reflect.New(rt)
		inst := ptr.Interface().(Primitive)
		expectClass, expectTag := ClassUniversal, inst.Tag()
		if dt, ok := inst.(DynamicTag); ok {
			expectClass, expectTag = dt.DynamicTag()
		}
		if !skipTagCheck {
			if tlv.Class != expectClass || tlv.Tag != expectTag {
				return reflect.Value{}, UnexpectedTagError(0, expectClass, expectTag, tlv.Class, tlv.Tag)
			}
		}
		if tlv.Compound {
			return reflect.Value{}, newErrf(KindInvalidHeader, 0, "%s: constructed encoding not supported", TagName(inst.Tag()))
		}
		if err := inst.decodeContent(tlv.Value, rule, opts); err != nil {
			return reflect.Value{}, err
		}
		return ptr.Elem(), nil
	case rt.Kind() == reflect.Struct:
		expectTag := TagSequence
		if opts.Set {
			expectTag = TagSet
		}
		if !skipTagCheck && (tlv.Class != ClassUniversal || tlv.Tag != expectTag) {
			return reflect.Value{}, UnexpectedTagError(0, ClassUniversal, expectTag, tlv.Class, tlv.Tag)
		}
		if !tlv.Compound {
			return reflect.Value{}, newErrf(KindInvalidHeader, 0, "%s: expected constructed encoding", TagName(expectTag))
		}
		out := reflect.New(rt).Elem()
		var err error
		if opts.Set {
			err = decodeSetContent(out, NewCursor(tlv.Value), rule)
		} else {
			err = decodeSequenceContent(out, NewCursor(tlv.Value), rule)
		}
		return out, err
	case rt.Kind() == reflect.Slice:
		expectTag := TagSequence
		if opts.Set {
			expectTag = TagSet
		}
		if !skipTagCheck && (tlv.Class != ClassUniversal || tlv.Tag != expectTag) {
			return reflect.Value{}, UnexpectedTagError(0, ClassUniversal, expectTag, tlv.Class, tlv.Tag)
		}
		if !tlv.Compound {
			return reflect.Value{}, newErrf(KindInvalidHeader, 0, "%s: expected constructed encoding", TagName(expectTag))
		}
		return decodeRepeated(rt, NewCursor(tlv.Value), rule, opts)
	}
	return reflect.Value{}, newErrf(KindUnsupported, 0, "unsupported declared type %s", rt)
}

// defaultValue constructs a reflect.Value of type rt from a DEFAULT
// literal string (component 4.D's "Literal default protocol").
func defaultValue(rt reflect.Type, literal string) (reflect.Value, error) {
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt == reflect.TypeOf(Integer{}) {
		iv, err := NewInteger(literal)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(iv), nil
	}
	switch rt.Kind() {
	case reflect.Bool:
		return reflect.ValueOf(literal == "true").Convert(rt), nil
	case reflect.String:
		return reflect.ValueOf(literal).Convert(rt), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := atoi(literal)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(n).Convert(rt), nil
	}
	return reflect.Value{}, newErrf(KindUnsupported, 0, "no DEFAULT literal support for type %s", rt)
}
