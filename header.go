package asn1

/*
header.go implements component 4.B: identifier-octet and length
encode/decode, including the high-tag-number multi-byte form and the
short/long/indefinite length forms of X.690 §8.1.

Decode and encode are kept as free functions operating on Cursor/[]byte
rather than methods on TLV, so Header (component B) stays independent
of TLV/Value assembly (component A feeding B feeding the rest, per
spec.md §2's data-flow diagram).
*/

// Header is the decoded identifier + length portion of a TLV, before
// its content bytes have been sliced out.
type Header struct {
	Class      int
	Tag        int
	Compound   bool
	Length     int  // -1 means indefinite (BER only)
	HeaderLen  int  // bytes consumed by identifier+length octets
}

const maxTagAccum = 1 << 28

// decodeIdentifier reads the class/compound/tag portion of an
// identifier octet sequence starting at c. Returns the number of
// bytes consumed.
func decodeIdentifier(c Cursor) (class, tag int, compound bool, consumed int, err error) {
	b0, err := c.PeekByte()
	if err != nil {
		return
	}
	class = int(b0>>6) & 0x3
	compound = b0&0x20 != 0
	low := int(b0 & 0x1F)
	consumed = 1

	if low < 31 {
		tag = low
		return
	}

	// High-tag-number form: successive base-128 octets, MSB-first,
	// terminated by an octet whose high bit is clear.
	rest, _ := c.Advance(1)
	first := true
	accum := 0
	for {
		bb, perr := rest.PeekByte()
		if perr != nil {
			err = newErr(KindIncomplete, c.Position(), "truncated high-tag-number form")
			return
		}
		if first && bb == 0x80 {
			err = newErrf(KindNonCanonicalTag, c.Position(), "leading-zero continuation in high-tag-number form")
			return
		}
		first = false
		accum = (accum << 7) | int(bb&0x7F)
		if accum > maxTagAccum {
			err = newErrf(KindInvalidHeader, c.Position(), "tag number too large (> 2^28)")
			return
		}
		rest, _ = rest.Advance(1)
		consumed++
		if bb&0x80 == 0 {
			break
		}
	}
	if accum < 31 {
		err = newErrf(KindNonCanonicalTag, c.Position(), "high-tag-number form used for tag %d < 31", accum)
		return
	}
	tag = accum
	return
}

// encodeIdentifier appends the identifier octets for (class, tag,
// compound) to dst, using the minimal form (short tag when tag < 31).
func encodeIdentifier(dst []byte, class, tag int, compound bool) []byte {
	var b0 byte = byte(class&0x3) << 6
	if compound {
		b0 |= 0x20
	}
	if tag < 31 {
		b0 |= byte(tag)
		return append(dst, b0)
	}
	b0 |= 0x1F
	dst = append(dst, b0)
	return append(dst, encodeBase128(tag)...)
}

// encodeBase128 returns the minimal base-128 MSB-continuation
// encoding of a non-negative integer (used for high tag numbers).
func encodeBase128(v int) []byte {
	if v == 0 {
		return []byte{0x00}
	}
	var out []byte
	for v > 0 {
		b := byte(v & 0x7F)
		v >>= 7
		if len(out) > 0 {
			b |= 0x80
		}
		out = append([]byte{b}, out...)
	}
	return out
}

// decodeLength reads a length field from c. A returned length of -1
// denotes an indefinite length (only legal under BER, and only on a
// constructed TLV — the caller enforces that rule).
func decodeLength(c Cursor) (length, consumed int, err error) {
	b0, err := c.PeekByte()
	if err != nil {
		err = newErr(KindIncomplete, c.Position(), "missing length octet")
		return
	}
	if b0&0x80 == 0 {
		length = int(b0 & 0x7F)
		consumed = 1
		return
	}
	n := int(b0 & 0x7F)
	consumed = 1
	if n == 0 {
		length = -1 // indefinite
		return
	}
	if n > 8 {
		err = newErrf(KindInvalidLength, c.Position(), "length octet count %d exceeds supported width", n)
		return
	}
	rest, _ := c.Advance(1)
	lenBytes, _, terr := rest.Take(n)
	if terr != nil {
		err = newErr(KindIncomplete, c.Position(), "truncated length octets")
		return
	}
	consumed += n
	v := 0
	for _, b := range lenBytes {
		v = (v << 8) | int(b)
	}
	if v < 0 {
		err = newErrf(KindInvalidLength, c.Position(), "length overflow")
		return
	}
	length = v

	// Non-canonical long-form detection: leading zero octet, or a
	// long form that could have fit in short form / fewer octets.
	if lenBytes[0] == 0x00 {
		err = newErrf(KindNonCanonicalLength, c.Position(), "leading zero octet in length")
		return
	}
	if length < 0x80 {
		err = newErrf(KindNonCanonicalLength, c.Position(), "long-form length %d fits in short form", length)
		return
	}
	if minimalLengthOctets(length) != n {
		err = newErrf(KindNonCanonicalLength, c.Position(), "length uses %d octets, minimal is %d", n, minimalLengthOctets(length))
	}
	return
}

func minimalLengthOctets(n int) int {
	c := 0
	for v := n; v > 0; v >>= 8 {
		c++
	}
	if c == 0 {
		c = 1
	}
	return c
}

// encodeLength appends the minimal definite-length encoding of n, or
// the indefinite-length marker (0x80) if indefinite is true.
func encodeLength(dst []byte, n int, indefinite bool) []byte {
	if indefinite {
		return append(dst, 0x80)
	}
	if n < 0x80 {
		return append(dst, byte(n))
	}
	var octs []byte
	for v := n; v > 0; v >>= 8 {
		octs = append([]byte{byte(v & 0xFF)}, octs...)
	}
	dst = append(dst, byte(0x80|len(octs)))
	return append(dst, octs...)
}
