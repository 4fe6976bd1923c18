package asn1

/*
rule.go contains the EncodingRule abstraction. Only BER and DER are
implemented: CER is explicitly out of scope (see spec.md §1/§6) and
this package rejects CER-only constructs (indefinite-length
constructed forms) whenever the DER rule is selected.
*/

// EncodingRule selects which X.690 variant governs a Marshal or
// Unmarshal call.
type EncodingRule uint8

const (
	// BER is the permissive Basic Encoding Rules variant. Indefinite
	// lengths, non-minimal length forms, and unordered SET fields are
	// all accepted. Non-minimal high-tag-number forms are rejected
	// under every rule.
	BER EncodingRule = iota + 1

	// DER is the canonical Distinguished Encoding Rules subset.
	// Indefinite lengths and any non-minimal form are rejected on
	// decode, and always avoided on encode.
	DER
)

// DefaultEncoding is the EncodingRule used by Marshal/Unmarshal calls
// that do not supply a WithRule option. Grounded on the teacher's
// er.go DefaultEncoding package variable.
var DefaultEncoding EncodingRule = BER

func (r EncodingRule) String() string {
	switch r {
	case BER:
		return "BER"
	case DER:
		return "DER"
	default:
		return "invalid-encoding-rule"
	}
}

// allowsIndefinite reports whether the rule permits indefinite-length
// constructed encodings on decode.
func (r EncodingRule) allowsIndefinite() bool { return r == BER }

// canonical reports whether the rule enforces DER canonicality checks.
func (r EncodingRule) canonical() bool { return r == DER }
