package asn1

/*
set.go implements the SET/SET-OF half of component 4.E. Unlike
SEQUENCE, a SET's field order is not significant on the wire (BER) or
is the canonical tag/byte order (DER); decode must therefore match
each incoming child against the declared field set by tag rather than
by position.
*/

import "reflect"

// encodeSetContent encodes v's fields (order as declared, subject to
// OPTIONAL/DEFAULT omission identical to SEQUENCE) and, under DER,
// sorts the independently-encoded children ascending by their own
// byte sequence before concatenation (spec.md §4.E).
func encodeSetContent(v reflect.Value, rule EncodingRule) ([]byte, error) {
	plan, err := structFieldPlan(v.Type())
	if err != nil {
		return nil, err
	}
	var encs [][]byte
	for _, f := range plan {
		fv := v.Field(f.index)

		if fv.Type() == rawValueType {
			encs = append(encs, fv.Interface().(RawValue).FullBytes)
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
		if fv.Kind() == reflect.Ptr && fv.IsNil() {
			if f.opts.Optional {
				continue
			}
			return nil, newErrf(KindMissingRequiredField, 0, "field %s: required but nil", f.name)
		}

		enc, err := encodeField(fv, rule, f.opts)
		if err != nil {
			if f.opts.MapErr != nil {
				err = f.opts.MapErr(err)
			}
			return nil, err
		}
		encs = append(encs, enc)
	}

	if rule.canonical() {
		sortByteSlices(encs)
	}
	var content []byte
	for _, e := range encs {
		content = append(content, e...)
	}
	return content, nil
}

// decodeSetContent parses c (the SET's content region) by matching
// each child TLV's tag against the declared field set, in any order
// (BER) while additionally enforcing ascending tag order (DER).
func decodeSetContent(v reflect.Value, c Cursor, rule EncodingRule) error {
	plan, err := structFieldPlan(v.Type())
	if err != nil {
		return err
	}

	type slot struct {
		field seqField
		pairs []tagPair
		filled bool
	}
	slots := make([]slot, len(plan))
	for i, f := range plan {
		if v.Field(f.index).Type() == rawValueType {
			slots[i] = slot{field: f}
			continue
		}
		pairs, terr := fieldTags(derefType(v.Field(f.index).Type()), f.opts)
		if terr != nil {
			return terr
		}
		slots[i] = slot{field: f, pairs: pairs}
	}

	prevClass, prevTag := -1, -1
	haveSeenOne := false

	for !c.IsEmpty() {
		class, tag, _, perr := PeekHeader(c)
		if perr != nil {
			return perr
		}

		if rule.canonical() && haveSeenOne {
			if class < prevClass || (class == prevClass && tag < prevTag) {
				return newErr(KindNonCanonicalOrder, c.Position(), "SET children not in ascending tag order")
			}
		}
		prevClass, prevTag = class, tag
		haveSeenOne = true

		matched := -1
		for i, s := range slots {
			if v.Field(s.field.index).Type() == rawValueType {
				continue
			}
			if matchesAny(s.pairs, class, tag) {
				matched = i
				if !s.filled {
					break
				}
			}
		}
		if matched < 0 {
			return newErrf(KindUnsupported, c.Position(), "SET child with tag %s/class %s matches no declared field", TagName(tag), ClassName(class))
		}
		if slots[matched].filled {
			return newErrf(KindDuplicateField, c.Position(), "duplicate SET field %s", slots[matched].field.name)
		}

		f := slots[matched].field
		fv := v.Field(f.index)
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
		slots[matched].filled = true
		c = rest
	}

	for _, s := range slots {
		if s.filled || v.Field(s.field.index).Type() == rawValueType {
			continue
		}
		f := s.field
		fv := v.Field(f.index)
		switch {
		case f.opts.HasDefault:
			dv, derr := defaultValue(fv.Type(), f.opts.Default)
			if derr != nil {
				return derr
			}
			fv.Set(dv)
		case f.opts.Optional:
		default:
			return newErr(KindMissingRequiredField, c.Position(), "field "+f.name+": required field absent")
		}
	}
	return nil
}
