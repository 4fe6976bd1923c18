package asn1

/*
oid.go implements OBJECT IDENTIFIER (tag 6) and RELATIVE-OID (tag 13),
grounded on the teacher's oid.go. Each arc is stored as an Integer (so
an OID component outside uint64 range, while vanishingly rare, is
still representable) and wire-encoded as base-128 with the high bit
of all but the last byte set (X.690 §8.19).
*/

import (
	"math/big"
)

// ObjectIdentifier is the ASN.1 OBJECT IDENTIFIER type: a sequence of
// two or more arcs, the first two of which are combined on the wire
// per X.690 §8.19.4.
type ObjectIdentifier []Integer

// NewObjectIdentifier builds an ObjectIdentifier from a dotted string
// such as "1.3.6.1.4.1" or from a slice of arcs (int, int64, or
// Integer).
func NewObjectIdentifier(x any) (ObjectIdentifier, error) {
	switch v := x.(type) {
	case string:
		return parseOIDString(v)
	case []int:
		out := make(ObjectIdentifier, len(v))
		for i, n := range v {
			out[i] = Integer{native: int64(n)}
		}
		return out, validateOIDArcs(out)
	case []int64:
		out := make(ObjectIdentifier, len(v))
		for i, n := range v {
			out[i] = Integer{native: n}
		}
		return out, validateOIDArcs(out)
	case []Integer:
		out := append(ObjectIdentifier(nil), v...)
		return out, validateOIDArcs(out)
	default:
		return nil, newErrf(KindUnsupported, 0, "OBJECT IDENTIFIER: unsupported constructor input type %T", x)
	}
}

func validateOIDArcs(oid ObjectIdentifier) error {
	if len(oid) < 2 {
		return newErr(KindInvalidEncoding, 0, "OBJECT IDENTIFIER: requires at least two arcs")
	}
	first := oid[0].Native()
	if oid[0].IsBig() || first < 0 || first > 2 {
		return newErr(KindInvalidEncoding, 0, "OBJECT IDENTIFIER: first arc must be 0, 1, or 2")
	}
	if first < 2 {
		second := oid[1].Native()
		if oid[1].IsBig() || second < 0 || second > 39 {
			return newErr(KindInvalidEncoding, 0, "OBJECT IDENTIFIER: second arc must be 0..39 when first arc is 0 or 1")
		}
	}
	return nil
}

func parseOIDString(s string) (ObjectIdentifier, error) {
	parts := split(s, ".")
	out := make(ObjectIdentifier, 0, len(parts))
	for _, p := range parts {
		n, err := stringToInteger(p)
		if err != nil {
			return nil, wrapErr(KindInvalidEncoding, 0, "OBJECT IDENTIFIER: invalid arc "+p, err)
		}
		out = append(out, n)
	}
	return out, validateOIDArcs(out)
}

func (o ObjectIdentifier) String() string {
	parts := make([]string, len(o))
	for i, arc := range o {
		parts[i] = arc.String()
	}
	return join(parts, ".")
}

func (o ObjectIdentifier) Len() int { return len(o) }

func (ObjectIdentifier) Tag() int { return TagOID }

func (o ObjectIdentifier) encodeContent(_ Options) ([]byte, error) {
	if err := validateOIDArcs(o); err != nil {
		return nil, err
	}
	first := big.NewInt(o[0].Native())
	combined := new(big.Int).Mul(first, big.NewInt(40))
	combined.Add(combined, o[1].Big())

	var content []byte
	content = append(content, encodeOIDArc(combined)...)
	for _, arc := range o[2:] {
		content = append(content, encodeOIDArc(arc.Big())...)
	}
	return content, nil
}

func (o *ObjectIdentifier) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	if err := requireNonEmpty(TagOID, content); err != nil {
		return err
	}
	arcs, err := decodeOIDArcs(content)
	if err != nil {
		return err
	}
	if len(arcs) == 0 {
		return newErr(KindInvalidEncoding, 0, "OBJECT IDENTIFIER: empty arc list")
	}
	first := arcs[0]
	var firstArc, secondArc *big.Int
	switch {
	case first.Cmp(big.NewInt(80)) < 0:
		firstArc = new(big.Int).Div(first, big.NewInt(40))
		secondArc = new(big.Int).Mod(first, big.NewInt(40))
	default:
		firstArc = big.NewInt(2)
		secondArc = new(big.Int).Sub(first, big.NewInt(80))
	}
	out := make(ObjectIdentifier, 0, len(arcs)+1)
	out = append(out, bigToInteger(firstArc), bigToInteger(secondArc))
	for _, a := range arcs[1:] {
		out = append(out, bigToInteger(a))
	}
	*o = out
	return nil
}

func encodeOIDArc(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0x00}
	}
	var groups []byte
	tmp := new(big.Int).Set(n)
	mask := big.NewInt(0x7F)
	for tmp.Sign() > 0 {
		g := new(big.Int).And(tmp, mask)
		groups = append([]byte{byte(g.Int64())}, groups...)
		tmp.Rsh(tmp, 7)
	}
	for i := 0; i < len(groups)-1; i++ {
		groups[i] |= 0x80
	}
	return groups
}

func decodeOIDArcs(content []byte) ([]*big.Int, error) {
	var arcs []*big.Int
	val := new(big.Int)
	started := false
	for i := 0; i < len(content); i++ {
		b := content[i]
		if !started && b == 0x80 {
			return nil, newErrf(KindNonCanonicalTag, int64(i), "OBJECT IDENTIFIER: non-minimal arc encoding at byte %d", i)
		}
		started = true
		val.Lsh(val, 7)
		val.Or(val, big.NewInt(int64(b&0x7F)))
		if b&0x80 == 0 {
			arcs = append(arcs, new(big.Int).Set(val))
			val.SetInt64(0)
			started = false
		}
	}
	if started {
		return nil, newErr(KindIncomplete, int64(len(content)), "OBJECT IDENTIFIER: truncated arc at end of content")
	}
	return arcs, nil
}

// RelativeOID is the ASN.1 RELATIVE-OID type (tag 13): an OID fragment
// with no implied first-two-arc combination.
type RelativeOID []Integer

func (RelativeOID) Tag() int { return TagRelativeOID }

func (r RelativeOID) Len() int { return len(r) }

func (r RelativeOID) String() string {
	parts := make([]string, len(r))
	for i, arc := range r {
		parts[i] = arc.String()
	}
	return join(parts, ".")
}

func (r RelativeOID) encodeContent(_ Options) ([]byte, error) {
	var content []byte
	for _, arc := range r {
		content = append(content, encodeOIDArc(arc.Big())...)
	}
	return content, nil
}

func (r *RelativeOID) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	if err := requireNonEmpty(TagRelativeOID, content); err != nil {
		return err
	}
	arcs, err := decodeOIDArcs(content)
	if err != nil {
		return err
	}
	out := make(RelativeOID, len(arcs))
	for i, a := range arcs {
		out[i] = bigToInteger(a)
	}
	*r = out
	return nil
}
