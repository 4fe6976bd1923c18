package asn1

/*
text.go implements the shared alphabet-validation engine used by the
restricted ASN.1 character-string types with a byte alphabet (ia5.go,
ps.go, ns.go, vs.go, and t61.go), grounded on the teacher's text.go.
Each of those types has its own alphabet predicate here; the types
keep their own encode/decode methods. utf8.go checks UTF-8
well-formedness instead, and gen.go applies no alphabet check.
*/

func validateAlphabet(tag int, s string, allowed func(byte) bool) error {
	for i := 0; i < len(s); i++ {
		if !allowed(s[i]) {
			return newErrf(KindStringInvalidChar, int64(i), "%s: byte 0x%02X at position %d is outside the permitted alphabet", TagName(tag), s[i], i)
		}
	}
	return nil
}

func isNumericByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == ' '
}

func isPrintableByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

func isIA5Byte(b byte) bool { return b < 0x80 }

func isVisibleByte(b byte) bool { return b >= 0x20 && b < 0x7F }

func isT61Byte(b byte) bool { return b < 0x80 || (b >= 0xA0 && b <= 0xFF) }
