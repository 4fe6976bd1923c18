package asn1

/*
enum.go implements the ASN.1 ENUMERATED type (tag 10), grounded on the
teacher's enum.go. Content encoding is byte-for-byte identical to
INTEGER (X.690 §8.4); only the tag and the Go type differ, so this
type borrows int.go's encode/decode helpers directly.
*/

// Enumerated is the ASN.1 ENUMERATED type — an INTEGER-encoded value
// from a fixed, named set.
type Enumerated Integer

// NewEnumerated builds an Enumerated from x using the same accepted
// input types as NewInteger.
func NewEnumerated(x any, constraints ...Constraint) (Enumerated, error) {
	i, err := NewInteger(x, constraints...)
	return Enumerated(i), err
}

func (Enumerated) Tag() int { return TagEnumerated }

func (e Enumerated) String() string { return Integer(e).String() }

func (e Enumerated) encodeContent(opts Options) ([]byte, error) {
	return Integer(e).encodeContent(opts)
}

func (e *Enumerated) decodeContent(content []byte, rule EncodingRule, opts Options) error {
	return (*Integer)(e).decodeContent(content, rule, opts)
}
