package asn1

/*
oct.go implements OCTET STRING (tag 4), grounded on the teacher's
oct.go. Content is an arbitrary byte string; BER permits a constructed
encoding (concatenation of nested OCTET STRING children) which this
package does not produce and rejects on decode.
*/

// OctetString is the ASN.1 OCTET STRING type.
type OctetString []byte

func (OctetString) Tag() int { return TagOctetString }

func (o OctetString) Len() int { return len(o) }

func (o OctetString) String() string { return string(o) }

func (o OctetString) encodeContent(_ Options) ([]byte, error) {
	return append([]byte(nil), o...), nil
}

func (o *OctetString) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	*o = append(OctetString(nil), content...)
	return nil
}
