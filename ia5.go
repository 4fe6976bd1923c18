package asn1

// ia5.go implements IA5String (tag 22), grounded on the teacher's
// ia5.go: the full 7-bit ASCII repertoire (ITU-T IA5).

// IA5String is the ASN.1 IA5String type.
type IA5String string

// NewIA5String validates s as 7-bit ASCII.
func NewIA5String(s string, constraints ...Constraint) (IA5String, error) {
	if err := validateAlphabet(TagIA5String, s, isIA5Byte); err != nil {
		return "", err
	}
	v := IA5String(s)
	for _, c := range constraints {
		if err := c(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (IA5String) Tag() int      { return TagIA5String }
func (v IA5String) Len() int    { return len(v) }
func (v IA5String) String() string { return string(v) }

func (v IA5String) encodeContent(_ Options) ([]byte, error) {
	return []byte(v), nil
}

func (v *IA5String) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	if err := validateAlphabet(TagIA5String, string(content), isIA5Byte); err != nil {
		return err
	}
	*v = IA5String(content)
	return nil
}
