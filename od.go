package asn1

// od.go implements ObjectDescriptor (tag 7), grounded on the
// teacher's od.go: an ObjectDescriptor behaves exactly like
// GraphicString, save for its own tag.

// ObjectDescriptor is the ASN.1 ObjectDescriptor type.
type ObjectDescriptor string

// NewObjectDescriptor wraps s as an ObjectDescriptor, applying any
// supplied constraints.
func NewObjectDescriptor(s string, constraints ...Constraint) (ObjectDescriptor, error) {
	v := ObjectDescriptor(s)
	for _, c := range constraints {
		if err := c(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (ObjectDescriptor) Tag() int      { return TagObjectDescriptor }
func (v ObjectDescriptor) Len() int    { return len(v) }
func (v ObjectDescriptor) String() string { return string(v) }

func (v ObjectDescriptor) encodeContent(_ Options) ([]byte, error) {
	return []byte(v), nil
}

func (v *ObjectDescriptor) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	*v = ObjectDescriptor(content)
	return nil
}
