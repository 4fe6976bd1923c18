package asn1

/*
sequence.go implements the SEQUENCE and SEQUENCE-OF half of component
4.E, grounded on the teacher's seq.go field-iteration pattern but
re-targeted at struct-tag-driven reflection instead of the teacher's
richer (and, for this spec's scope, unneeded) Options-object plumbing.

A Go struct is a SEQUENCE; its exported fields, in declaration order,
are the SEQUENCE's fields. Each field's `asn1:"..."` tag supplies the
component 4.H annotations (tag override, OPTIONAL, DEFAULT, ...).
*/

import "reflect"

// RawValue captures one child element's full, unparsed TLV encoding
// (header + content) without interpreting it — an extensibility
// escape hatch grounded on the teacher's RawContent (seq.go),
// supplemented into SPEC_FULL.md for unknown/extension fields.
type RawValue struct {
	FullBytes []byte
}

var rawValueType = reflect.TypeOf(RawValue{})

type seqField struct {
	index int
	name  string
	opts  Options
}

func structFieldPlan(rt reflect.Type) ([]seqField, error) {
	var out []seqField
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		tagStr := f.Tag.Get("asn1")
		if tagStr == "-" {
			continue
		}
		opts, err := ParseTag(tagStr)
		if err != nil {
			return nil, err
		}
		out = append(out, seqField{index: i, name: f.Name, opts: opts})
	}
	return out, nil
}

// encodeSequenceContent encodes v's fields, in declared order, into a
// concatenated content byte stream (the SEQUENCE's TLV value).
func encodeSequenceContent(v reflect.Value, rule EncodingRule) ([]byte, error) {
	plan, err := structFieldPlan(v.Type())
	if err != nil {
		return nil, err
	}
	var content []byte
	for _, f := range plan {
		fv := v.Field(f.index)

		if fv.Type() == rawValueType {
			content = append(content, fv.Interface().(RawValue).FullBytes...)
			continue
		}

		if f.opts.OmitEmpty && fv.IsZero() {
			continue
		}
		if f.opts.HasDefault {
			if dv, derr := defaultValue(fv.Type(), f.opts.Default); derr == nil && stringifyReflect(fv) == stringifyReflect(dv) {
				continue
			}
		}
		if f.opts.Optional && isNilable(fv) && fv.IsZero() {
			continue
		}

		target := fv
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				if f.opts.Optional {
					continue
				}
				return nil, newErrf(KindMissingRequiredField, 0, "field %s: required but nil", f.name)
			}
			target = fv
		}

		enc, err := encodeField(target, rule, f.opts)
		if err != nil {
			if f.opts.MapErr != nil {
				err = f.opts.MapErr(err)
			}
			return nil, err
		}
		content = append(content, enc...)
	}
	return content, nil
}

func isNilable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}

// decodeSequenceContent parses c (the SEQUENCE's content region) into
// v's fields, in declared order, implementing the peek-and-match rule
// of spec.md §4.E: a field is only consumed once its expected tag
// matches the next child's tag; on mismatch an OPTIONAL/DEFAULT field
// is skipped (cursor untouched) while a required field fails with
// KindUnexpectedTag (or KindMissingRequiredField once the content is
// exhausted).
// Bytes left over after all fields are matched are valid trailing
// elements and are silently discarded (spec.md §8 "Trailing bytes").
func decodeSequenceContent(v reflect.Value, c Cursor, rule EncodingRule) error {
	plan, err := structFieldPlan(v.Type())
	if err != nil {
		return err
	}
	for _, f := range plan {
		fv := v.Field(f.index)

		if fv.Type() == rawValueType {
			if c.IsEmpty() {
				if f.opts.Optional {
					continue
				}
				return newErr(KindMissingRequiredField, c.Position(), "field "+f.name+": missing")
			}
			start := c
			_, rest, err := ReadTLV(c, rule)
			if err != nil {
				return err
			}
			n := int(rest.Position() - start.Position())
			fv.Set(reflect.ValueOf(RawValue{FullBytes: start.Bytes()[:n]}))
			c = rest
			continue
		}

		present := true
		var expected []tagPair
		var gotClass, gotTag int
		if c.IsEmpty() {
			present = false
		} else {
			pairs, terr := fieldTags(derefType(fv.Type()), f.opts)
			if terr != nil {
				return terr
			}
			class, tag, _, perr := PeekHeader(c)
			if perr != nil {
				return perr
			}
			present = matchesAny(pairs, class, tag)
			expected, gotClass, gotTag = pairs, class, tag
		}

		if !present {
			switch {
			case f.opts.HasDefault:
				dv, derr := defaultValue(fv.Type(), f.opts.Default)
				if derr != nil {
					return derr
				}
				fv.Set(dv)
			case f.opts.Optional:
				// leave zero value, cursor untouched
			default:
				if len(expected) > 0 {
					return UnexpectedTagError(c.Position(), expected[0].Class, expected[0].Tag, gotClass, gotTag)
				}
				return newErr(KindMissingRequiredField, c.Position(), "field "+f.name+": required field absent")
			}
			continue
		}

		target := fv
		allocated := false
		if fv.Kind() == reflect.Ptr {
			target = reflect.New(fv.Type().Elem())
			allocated = true
		}

		val, rest, err := decodeField(c, target.Type(), rule, f.opts)
		if err != nil {
			if f.opts.MapErr != nil {
				err = f.opts.MapErr(err)
			}
			return err
		}
		if allocated {
			fv.Set(ptrTo(val))
		} else {
			fv.Set(val)
		}
		c = rest
	}
	return nil
}

func derefType(rt reflect.Type) reflect.Type {
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	return rt
}

func ptrTo(v reflect.Value) reflect.Value {
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p
}

// encodeRepeated encodes a SEQUENCE-OF/SET-OF slice's elements. For
// SET-OF under DER, the encoded elements are sorted ascending by
// their own byte encoding before concatenation (spec.md §4.E).
func encodeRepeated(v reflect.Value, rule EncodingRule, opts Options) ([]byte, error) {
	n := v.Len()
	encs := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		enc, err := encodeField(v.Index(i), rule, Options{})
		if err != nil {
			return nil, err
		}
		encs = append(encs, enc)
	}
	if opts.Set && rule.canonical() {
		sortByteSlices(encs)
	}
	var content []byte
	for _, e := range encs {
		content = append(content, e...)
	}
	return content, nil
}

func sortByteSlices(encs [][]byte) {
	for i := 1; i < len(encs); i++ {
		for j := i; j > 0 && lessBytes(encs[j], encs[j-1]); j-- {
			encs[j], encs[j-1] = encs[j-1], encs[j]
		}
	}
}

func lessBytes(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// decodeRepeated parses c (a SEQUENCE-OF/SET-OF content region)
// repeatedly as elemType until the region is exhausted.
func decodeRepeated(sliceType reflect.Type, c Cursor, rule EncodingRule, opts Options) (reflect.Value, error) {
	elemType := sliceType.Elem()
	out := reflect.MakeSlice(sliceType, 0, 0)
	for !c.IsEmpty() {
		val, rest, err := decodeField(c, elemType, rule, Options{})
		if err != nil {
			return reflect.Value{}, err
		}
		out = reflect.Append(out, val)
		c = rest
	}
	return out, nil
}
