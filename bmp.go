package asn1

// bmp.go implements BMPString (tag 30), grounded on the teacher's
// bmp.go: each character is a 2-byte UCS-2 code unit, big-endian.

// BMPString is the ASN.1 BMPString type (UCS-2).
type BMPString string

// NewBMPString wraps s as a BMPString, applying any supplied
// constraints. Runes outside the Basic Multilingual Plane (requiring
// a UCS-2 surrogate or 4-byte encoding) are rejected.
func NewBMPString(s string, constraints ...Constraint) (BMPString, error) {
	for _, r := range s {
		if r > 0xFFFF {
			return "", newErrf(KindStringInvalidChar, 0, "BMPString: rune U+%04X outside the Basic Multilingual Plane", r)
		}
	}
	v := BMPString(s)
	for _, c := range constraints {
		if err := c(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (BMPString) Tag() int      { return TagBMPString }
func (v BMPString) Len() int    { return len([]rune(string(v))) }
func (v BMPString) String() string { return string(v) }

func (v BMPString) encodeContent(_ Options) ([]byte, error) {
	return packUCS2(string(v)), nil
}

func (v *BMPString) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	s, err := unpackUCS2(content)
	if err != nil {
		return err
	}
	*v = BMPString(s)
	return nil
}
