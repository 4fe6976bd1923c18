package asn1

/*
constr.go implements a small value-constraint system, grounded on the
teacher's constr_on.go. A Constraint is checked against a decoded or
about-to-be-encoded value; NewInteger and the restricted string
constructors accept a variadic list of them.

golang.org/x/exp/constraints supplies the Ordered bound for Range,
letting one Range[int] and Range[int64] (and so on) share a single
implementation instead of one per numeric kind — the reason this
package is in go.mod at all.
*/

import "golang.org/x/exp/constraints"

// Constraint validates x, returning a descriptive error on violation.
type Constraint func(x any) error

func constraintViolationf(format string, args ...any) error {
	return newErrf(KindUnsupported, 0, format, args...)
}

// Range returns a Constraint admitting any value of dynamic type T
// whose value falls within [minimum, maximum]. Values of any other
// type are rejected, even if convertible to T.
func Range[T constraints.Ordered](minimum, maximum T) Constraint {
	return func(val any) error {
		v, ok := val.(T)
		if !ok {
			return constraintViolationf("Range: value is not of the expected ordered type")
		}
		if v < minimum || v > maximum {
			return constraintViolationf("Range: value %v out of bounds [%v, %v]", v, minimum, maximum)
		}
		return nil
	}
}

// Lengthy is satisfied by any value exposing a logical length — the
// restricted string types and OCTET STRING/BIT STRING all qualify.
type Lengthy interface {
	Len() int
}

// Size returns a Constraint admitting any value of dynamic type T
// whose Len() falls within [minimum, maximum].
func Size[T Lengthy](minimum, maximum int) Constraint {
	return func(val any) error {
		v, ok := val.(T)
		if !ok {
			return constraintViolationf("Size: value does not implement the expected length interface")
		}
		n := v.Len()
		if n < minimum || n > maximum {
			return constraintViolationf("Size: length %d out of bounds [%d, %d]", n, minimum, maximum)
		}
		return nil
	}
}

// From returns a Constraint rejecting any string/[]byte value
// containing a byte outside the allowed set. Values whose dynamic type
// is not exactly string or []byte (including the named restricted
// string types) are rejected. The restricted string types' own
// alphabet checks use validateAlphabet (text.go), not From.
func From(allowed string) Constraint {
	var set [256]bool
	for i := 0; i < len(allowed); i++ {
		set[allowed[i]] = true
	}
	return func(val any) error {
		var s string
		switch tv := val.(type) {
		case string:
			s = tv
		case []byte:
			s = string(tv)
		default:
			return constraintViolationf("From: value is not a string or []byte")
		}
		for i := 0; i < len(s); i++ {
			if !set[s[i]] {
				return newErrf(KindStringInvalidChar, int64(i), "character %q at position %d is not in the allowed alphabet", s[i], i)
			}
		}
		return nil
	}
}

// Union admits a value if at least one of cs accepts it.
func Union(cs ...Constraint) Constraint {
	return func(x any) error {
		var last error
		for _, c := range cs {
			if last = c(x); last == nil {
				return nil
			}
		}
		return constraintViolationf("Union: value satisfied none of %d constraints", len(cs))
	}
}

// Intersection admits a value only if every one of cs accepts it.
func Intersection(cs ...Constraint) Constraint {
	return func(x any) error {
		for _, c := range cs {
			if err := c(x); err != nil {
				return err
			}
		}
		return nil
	}
}

// Unsigned rejects negative Integer values.
func Unsigned(x any) error {
	i, ok := x.(Integer)
	if !ok {
		return constraintViolationf("Unsigned: value is not an Integer")
	}
	if i.Cmp(Integer{}) < 0 {
		return constraintViolationf("Unsigned: negative INTEGER value %s not permitted", i)
	}
	return nil
}
