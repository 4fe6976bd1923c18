package asn1

// ns.go implements NumericString (tag 18), grounded on the teacher's
// ns.go: digits and space only.

// NumericString is the ASN.1 NumericString type.
type NumericString string

// NewNumericString validates s against the NumericString alphabet.
func NewNumericString(s string, constraints ...Constraint) (NumericString, error) {
	if err := validateAlphabet(TagNumericString, s, isNumericByte); err != nil {
		return "", err
	}
	n := NumericString(s)
	for _, c := range constraints {
		if err := c(n); err != nil {
			return "", err
		}
	}
	return n, nil
}

func (NumericString) Tag() int      { return TagNumericString }
func (n NumericString) Len() int    { return len(n) }
func (n NumericString) String() string { return string(n) }

func (n NumericString) encodeContent(_ Options) ([]byte, error) {
	return []byte(n), nil
}

func (n *NumericString) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	if err := validateAlphabet(TagNumericString, string(content), isNumericByte); err != nil {
		return err
	}
	*n = NumericString(content)
	return nil
}
