package asn1

// vs.go implements VisibleString (tag 26), grounded on the teacher's
// vs.go: the visible (non-control) subset of IA5/ASCII, space through
// tilde.

// VisibleString is the ASN.1 VisibleString type (aka ISO646String).
type VisibleString string

// NewVisibleString validates s against the VisibleString alphabet.
func NewVisibleString(s string, constraints ...Constraint) (VisibleString, error) {
	if err := validateAlphabet(TagVisibleString, s, isVisibleByte); err != nil {
		return "", err
	}
	v := VisibleString(s)
	for _, c := range constraints {
		if err := c(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (VisibleString) Tag() int      { return TagVisibleString }
func (v VisibleString) Len() int    { return len(v) }
func (v VisibleString) String() string { return string(v) }

func (v VisibleString) encodeContent(_ Options) ([]byte, error) {
	return []byte(v), nil
}

func (v *VisibleString) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	if err := validateAlphabet(TagVisibleString, string(content), isVisibleByte); err != nil {
		return err
	}
	*v = VisibleString(content)
	return nil
}
