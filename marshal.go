package asn1

/*
marshal.go is the package's external interface (component 6), grounded
on the teacher's runtime.go but trimmed to this module's byte-slice
wire format instead of the teacher's mutable PDU return value — there
is no streaming I/O target here, so a plain []byte is the natural
Go-idiomatic return type (see SPEC_FULL.md §6).
*/

import "reflect"

// DynamicTag is implemented by a Primitive whose wire tag is decided
// at runtime rather than fixed by its Go type (for instance, a value
// that can appear under more than one context-specific tag depending
// on configuration external to the type itself). When present, its
// DynamicTag() result is used in place of Tag() during both tag
// discovery (fieldTags) and encode/decode dispatch.
type DynamicTag interface {
	DynamicTag() (class, tag int)
}

type marshalConfig struct {
	rule EncodingRule
}

// EncodingOption configures a Marshal/Unmarshal call.
type EncodingOption func(*marshalConfig)

// WithRule selects the encoding rule (BER or DER) for one call,
// overriding DefaultEncoding.
func WithRule(rule EncodingRule) EncodingOption {
	return func(c *marshalConfig) { c.rule = rule }
}

func resolveConfig(opts []EncodingOption) marshalConfig {
	cfg := marshalConfig{rule: DefaultEncoding}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// Marshal encodes x (a struct, slice, Primitive, or ChoiceType value,
// or a pointer to one) using the rule selected by opts (DefaultEncoding,
// which is BER unless changed, when no WithRule option is given), per
// spec.md §6.
func Marshal(x any, opts ...EncodingOption) ([]byte, error) {
	cfg := resolveConfig(opts)
	v := reflect.ValueOf(x)
	if !v.IsValid() {
		return nil, newErr(KindUnsupported, 0, "Marshal: nil value")
	}
	if v.Kind() != reflect.Ptr && !v.CanAddr() {
		addressable := reflect.New(v.Type())
		addressable.Elem().Set(v)
		v = addressable.Elem()
	}
	return encodeField(v, cfg.rule, Options{})
}

// MarshalDER encodes x under DER.
func MarshalDER(x any) ([]byte, error) { return Marshal(x, WithRule(DER)) }

// MarshalBER encodes x under BER.
func MarshalBER(x any) ([]byte, error) { return Marshal(x, WithRule(BER)) }

// Unmarshal decodes the leading TLV of data into x, which must be a
// non-nil pointer, per spec.md §6/§8 ("top-level parse returns
// unconsumed bytes as remainder"). The returned rest is the portion of
// data following the consumed top-level value.
func Unmarshal(data []byte, x any, opts ...EncodingOption) (rest []byte, err error) {
	cfg := resolveConfig(opts)
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return data, newErr(KindUnsupported, 0, "Unmarshal: destination must be a non-nil pointer")
	}
	val, c, err := decodeField(NewCursor(data), v.Elem().Type(), cfg.rule, Options{})
	if err != nil {
		return data, err
	}
	v.Elem().Set(val)
	return c.Bytes(), nil
}

// UnmarshalDER decodes data into x under DER, rejecting any
// non-canonical encoding.
func UnmarshalDER(data []byte, x any) ([]byte, error) { return Unmarshal(data, x, WithRule(DER)) }

// UnmarshalBER decodes data into x under BER.
func UnmarshalBER(data []byte, x any) ([]byte, error) { return Unmarshal(data, x, WithRule(BER)) }
