package asn1

/*
bool.go implements the BOOLEAN primitive (X.690 §8.2), grounded on the
teacher's bool.go. DER requires the single content octet to be exactly
0x00 (false) or 0xFF (true); BER tolerates any nonzero octet as true.
*/

// Boolean is the ASN.1 BOOLEAN type.
type Boolean bool

func (Boolean) Tag() int { return TagBoolean }

func (b Boolean) encodeContent(_ Options) ([]byte, error) {
	if b {
		return []byte{0xFF}, nil
	}
	return []byte{0x00}, nil
}

func (b *Boolean) decodeContent(content []byte, rule EncodingRule, _ Options) error {
	if err := requireExactLen(TagBoolean, content, 1); err != nil {
		return err
	}
	v := content[0]
	if rule.canonical() && v != 0x00 && v != 0xFF {
		return newErrf(KindInvalidEncoding, 0, "BOOLEAN: DER requires content octet 0x00 or 0xFF, got 0x%02X", v)
	}
	*b = v != 0x00
	return nil
}
