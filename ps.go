package asn1

// ps.go implements PrintableString (tag 19), grounded on the
// teacher's ps.go.

// PrintableString is the ASN.1 PrintableString type — letters,
// digits, and a small fixed set of punctuation (X.680 §41).
type PrintableString string

// NewPrintableString validates s against the PrintableString alphabet
// before returning it.
func NewPrintableString(s string, constraints ...Constraint) (PrintableString, error) {
	if err := validateAlphabet(TagPrintableString, s, isPrintableByte); err != nil {
		return "", err
	}
	p := PrintableString(s)
	for _, c := range constraints {
		if err := c(p); err != nil {
			return "", err
		}
	}
	return p, nil
}

func (PrintableString) Tag() int      { return TagPrintableString }
func (p PrintableString) Len() int    { return len(p) }
func (p PrintableString) String() string { return string(p) }

func (p PrintableString) encodeContent(_ Options) ([]byte, error) {
	return []byte(p), nil
}

func (p *PrintableString) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	if err := validateAlphabet(TagPrintableString, string(content), isPrintableByte); err != nil {
		return err
	}
	*p = PrintableString(content)
	return nil
}
