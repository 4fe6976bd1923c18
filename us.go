package asn1

// us.go implements UniversalString (tag 28), grounded on the
// teacher's us.go: each character is a 4-byte UCS-4 code unit,
// big-endian.

// UniversalString is the ASN.1 UniversalString type (UCS-4).
type UniversalString string

// NewUniversalString wraps s as a UniversalString, applying any
// supplied constraints.
func NewUniversalString(s string, constraints ...Constraint) (UniversalString, error) {
	v := UniversalString(s)
	for _, c := range constraints {
		if err := c(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (UniversalString) Tag() int      { return TagUniversalString }
func (v UniversalString) Len() int    { return len([]rune(string(v))) }
func (v UniversalString) String() string { return string(v) }

func (v UniversalString) encodeContent(_ Options) ([]byte, error) {
	return packUCS4(string(v)), nil
}

func (v *UniversalString) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	s, err := unpackUCS4(content)
	if err != nil {
		return err
	}
	*v = UniversalString(s)
	return nil
}
