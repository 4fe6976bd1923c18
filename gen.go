package asn1

/*
gen.go implements GeneralString (tag 27) and GraphicString (tag 25),
grounded on the teacher's gen.go. Both are "any registered graphic
character set" types under X.680 and, lacking a registered-charset
negotiation mechanism, are treated here as accepting any byte value —
the same permissive stance the teacher's generalStringBitmap takes
(it admits the entire 0x00-0xFF range).
*/

// GeneralString is the ASN.1 GeneralString type.
type GeneralString string

// NewGeneralString wraps s as a GeneralString, applying any supplied
// constraints.
func NewGeneralString(s string, constraints ...Constraint) (GeneralString, error) {
	v := GeneralString(s)
	for _, c := range constraints {
		if err := c(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (GeneralString) Tag() int      { return TagGeneralString }
func (v GeneralString) Len() int    { return len(v) }
func (v GeneralString) String() string { return string(v) }

func (v GeneralString) encodeContent(_ Options) ([]byte, error) {
	return []byte(v), nil
}

func (v *GeneralString) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	*v = GeneralString(content)
	return nil
}

// GraphicString is the ASN.1 GraphicString type.
type GraphicString string

// NewGraphicString wraps s as a GraphicString, applying any supplied
// constraints.
func NewGraphicString(s string, constraints ...Constraint) (GraphicString, error) {
	v := GraphicString(s)
	for _, c := range constraints {
		if err := c(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (GraphicString) Tag() int      { return TagGraphicString }
func (v GraphicString) Len() int    { return len(v) }
func (v GraphicString) String() string { return string(v) }

func (v GraphicString) encodeContent(_ Options) ([]byte, error) {
	return []byte(v), nil
}

func (v *GraphicString) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	*v = GraphicString(content)
	return nil
}
