package asn1

/*
utf8.go implements UTF8String (tag 12), grounded on the teacher's
utf8.go. Content is any well-formed UTF-8 byte sequence.
*/

import "unicode/utf8"

// UTF8String is the ASN.1 UTF8String type.
type UTF8String string

// NewUTF8String validates s as well-formed UTF-8.
func NewUTF8String(s string, constraints ...Constraint) (UTF8String, error) {
	if !utf8.ValidString(s) {
		return "", newErr(KindStringInvalidChar, 0, "UTF8String: invalid UTF-8 byte sequence")
	}
	v := UTF8String(s)
	for _, c := range constraints {
		if err := c(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (UTF8String) Tag() int      { return TagUTF8String }
func (v UTF8String) Len() int    { return len(v) }
func (v UTF8String) String() string { return string(v) }

func (v UTF8String) encodeContent(_ Options) ([]byte, error) {
	return []byte(v), nil
}

func (v *UTF8String) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	if !utf8.Valid(content) {
		return newErr(KindStringInvalidChar, 0, "UTF8String: invalid UTF-8 byte sequence")
	}
	*v = UTF8String(content)
	return nil
}
