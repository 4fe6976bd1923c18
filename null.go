package asn1

/*
null.go implements the ASN.1 NULL type (tag 5), grounded on the
teacher's null.go. NULL always encodes as zero content bytes.
*/

// Null is the ASN.1 NULL type — a presence marker with no value.
type Null struct{}

func (Null) Tag() int { return TagNull }

func (Null) encodeContent(_ Options) ([]byte, error) { return nil, nil }

func (n *Null) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	return requireExactLen(TagNull, content, 0)
}
