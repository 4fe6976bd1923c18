package asn1

// t61.go implements T61String (tag 20), grounded on the teacher's
// t61.go. The full T.61 teletex repertoire is a large 8-bit charset;
// this package accepts any byte value below 0x80 (the ASCII-compatible
// range) plus 0xA0-0xFF (the upper Latin-supplement range the teletex
// set uses), rejecting 0x80-0x9F, and does not decode the
// accent/diacritic combining sequences T.61 defines.

// T61String is the ASN.1 T61String (TeletexString) type.
type T61String string

// NewT61String validates s against the accepted T61String byte range.
func NewT61String(s string, constraints ...Constraint) (T61String, error) {
	if err := validateAlphabet(TagT61String, s, isT61Byte); err != nil {
		return "", err
	}
	v := T61String(s)
	for _, c := range constraints {
		if err := c(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (T61String) Tag() int      { return TagT61String }
func (v T61String) Len() int    { return len(v) }
func (v T61String) String() string { return string(v) }

func (v T61String) encodeContent(_ Options) ([]byte, error) {
	return []byte(v), nil
}

func (v *T61String) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	if err := validateAlphabet(TagT61String, string(content), isT61Byte); err != nil {
		return err
	}
	*v = T61String(content)
	return nil
}
