package asn1

/*
bs.go implements the ASN.1 BIT STRING type (tag 3), grounded on the
teacher's bs.go, simplified to the wire-level representation: a byte
slice plus a bit length, rather than the teacher's base2/base16
string-literal parsing front end, which this module does not have.
*/

// BitString is the ASN.1 BIT STRING type. Bytes holds the content
// octets (the last one right-padded with zero bits as needed);
// BitLength is the number of significant bits.
type BitString struct {
	Bytes     []byte
	BitLength int
}

// NewBitString builds a BitString from bytes and an explicit bit
// count (which must not exceed len(bytes)*8).
func NewBitString(bytes []byte, bitLength int, constraints ...Constraint) (BitString, error) {
	if bitLength < 0 || bitLength > len(bytes)*8 {
		return BitString{}, newErrf(KindInvalidEncoding, 0, "BIT STRING: bit length %d inconsistent with %d byte(s)", bitLength, len(bytes))
	}
	bs := BitString{Bytes: append([]byte(nil), bytes...), BitLength: bitLength}
	for _, c := range constraints {
		if err := c(bs); err != nil {
			return BitString{}, err
		}
	}
	return bs, nil
}

func (BitString) Tag() int { return TagBitString }

// Len reports the BIT STRING's logical length in bits — the unit
// Size constraints apply to for this type.
func (b BitString) Len() int { return b.BitLength }

func (b BitString) unusedBits() int {
	if b.BitLength == 0 {
		return 0
	}
	return len(b.Bytes)*8 - b.BitLength
}

func (b BitString) encodeContent(_ Options) ([]byte, error) {
	unused := b.unusedBits()
	content := make([]byte, 1+len(b.Bytes))
	content[0] = byte(unused)
	copy(content[1:], b.Bytes)
	return content, nil
}

func (b *BitString) decodeContent(content []byte, rule EncodingRule, _ Options) error {
	if err := requireNonEmpty(TagBitString, content); err != nil {
		return err
	}
	unused := int(content[0])
	if unused > 7 {
		return newErrf(KindInvalidEncoding, 0, "BIT STRING: unused-bits count %d out of range [0,7]", unused)
	}
	body := content[1:]
	if len(body) == 0 && unused != 0 {
		return newErr(KindInvalidEncoding, 0, "BIT STRING: unused-bits count must be 0 for empty content")
	}
	if rule.canonical() && unused > 0 {
		last := body[len(body)-1]
		if last&((1<<uint(unused))-1) != 0 {
			return newErr(KindInvalidEncoding, 0, "BIT STRING: DER requires unused trailing bits to be zero")
		}
	}
	b.Bytes = append([]byte(nil), body...)
	b.BitLength = len(body)*8 - unused
	return nil
}
