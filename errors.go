package asn1

/*
errors.go contains the kinded error taxonomy used throughout the
package (see spec component 4.G). Every fallible operation returns an
*Error carrying a Kind and the byte offset (relative to the original
input) at which the problem was detected.
*/

import "fmt"

// Kind discriminates the category of an *Error. Callers that need to
// distinguish failure modes should compare against these constants
// rather than matching error strings.
type Kind uint8

const (
	KindUnspecified Kind = iota
	KindIncomplete
	KindUnexpectedTag
	KindUnexpectedClass
	KindInvalidHeader
	KindInvalidLength
	KindNonCanonicalLength
	KindNonCanonicalTag
	KindNonCanonicalOrder
	KindIntegerTooLarge
	KindInvalidEncoding
	KindStringInvalidChar
	KindNoMatchingVariant
	KindDuplicateField
	KindMissingRequiredField
	KindUnexpectedTrailing
	KindUnsupported
)

var kindNames = map[Kind]string{
	KindUnspecified:          "Unspecified",
	KindIncomplete:           "Incomplete",
	KindUnexpectedTag:        "UnexpectedTag",
	KindUnexpectedClass:      "UnexpectedClass",
	KindInvalidHeader:        "InvalidHeader",
	KindInvalidLength:        "InvalidLength",
	KindNonCanonicalLength:   "NonCanonicalLength",
	KindNonCanonicalTag:      "NonCanonicalTag",
	KindNonCanonicalOrder:    "NonCanonicalOrder",
	KindIntegerTooLarge:      "IntegerTooLarge",
	KindInvalidEncoding:      "InvalidEncoding",
	KindStringInvalidChar:    "StringInvalidChar",
	KindNoMatchingVariant:    "NoMatchingVariant",
	KindDuplicateField:       "DuplicateField",
	KindMissingRequiredField: "MissingRequiredField",
	KindUnexpectedTrailing:   "UnexpectedTrailing",
	KindUnsupported:          "Unsupported",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Error is the sole error type returned by this package's parsers and
// encoders. It carries the offset (from the origin of the top-level
// input) at which the problem was detected, and an optional wrapped
// cause for errors that originate one layer down (e.g. a CHOICE
// variant's own parse failure).
type Error struct {
	Kind   Kind
	Offset int64
	Msg    string
	Cause  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s at offset %d: %s: %v", e.Kind, e.Offset, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is allows errors.Is(err, &Error{Kind: KindIncomplete}) style matching
// against the Kind alone, ignoring offset/message/cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(kind Kind, offset int64, msg string) *Error {
	return &Error{Kind: kind, Offset: offset, Msg: msg}
}

func newErrf(kind Kind, offset int64, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

func wrapErr(kind Kind, offset int64, msg string, cause error) *Error {
	return &Error{Kind: kind, Offset: offset, Msg: msg, Cause: cause}
}

// UnexpectedTagError is a convenience constructor for the single most
// common failure: a required field's tag did not match the one found
// in the stream.
func UnexpectedTagError(offset int64, expectedClass, expectedTag, gotClass, gotTag int) *Error {
	return newErrf(KindUnexpectedTag, offset,
		"expected tag %s (class %s), got tag %s (class %s)",
		TagName(expectedTag), ClassName(expectedClass), TagName(gotTag), ClassName(gotClass))
}

// NoMatchingVariantError cites the peeked tag and is returned by the
// CHOICE dispatcher (component 4.F) when no declared variant matches.
func NoMatchingVariantError(offset int64, gotClass, gotTag int) *Error {
	return newErrf(KindNoMatchingVariant, offset,
		"no CHOICE variant matches tag %s in class %s", TagName(gotTag), ClassName(gotClass))
}
