package asn1

/*
options.go implements component 4.H's annotation table as a runtime
struct-tag parser, grounded on the teacher's opts.go. Struct fields
carry an `asn1:"..."` tag whose syntax deliberately mirrors
encoding/asn1 and the teacher's own convention:

	asn1:"tag:0,explicit,optional"
	asn1:"tag:1,implicit,default:5"
	asn1:"application,tag:2"
	asn1:"set"

Recognized tokens: tag:N, application/private/universal (class;
context-specific is the default whenever tag:N is present without an
explicit class keyword), explicit, implicit, optional, default:LITERAL,
set, omitempty.
*/

import "reflect"

// Options carries the per-field encoding/decoding instructions derived
// from a struct tag (or set internally, e.g. by the CHOICE dispatcher).
// Marshal/Unmarshal always start from an empty Options; EncodingOption
// selects only the encoding rule.
type Options struct {
	hasTag   bool
	tag      int
	hasClass bool
	class    int

	Explicit  bool
	Optional  bool
	OmitEmpty bool
	Set       bool

	HasDefault bool
	Default    string // literal, compared textually (see defaultEquals)

	// MapErr, if set, is applied to any error produced while
	// marshaling/unmarshaling the field it is attached to (component
	// 4.H's map_err annotation).
	MapErr func(error) error
}

// HasTag reports whether a tag override (component/number) was set.
func (o Options) HasTag() bool { return o.hasTag }

// Tag returns the overriding tag number. Only meaningful if HasTag().
func (o Options) Tag() int { return o.tag }

// HasClass reports whether a class override was set.
func (o Options) HasClass() bool { return o.hasClass }

// Class returns the overriding class, defaulting to CONTEXT-SPECIFIC
// when a tag override is present without an explicit class keyword —
// the conventional X.690 default for application-declared tags.
func (o Options) Class() int {
	if o.hasClass {
		return o.class
	}
	return ClassContextSpecific
}

// SetTag records an explicit tag-number override.
func (o *Options) SetTag(n int) { o.hasTag = true; o.tag = n }

// SetClass records an explicit class override.
func (o *Options) SetClass(c int) { o.hasClass = true; o.class = c }

// ParseTag parses a struct-tag string (with or without the leading
// `asn1:` prefix and surrounding quotes) into an Options value.
func ParseTag(tag string) (Options, error) {
	tag = trimS(tag)
	tag = trim(tag, `"`)
	if hasPfx(tag, "asn1:") {
		tag = trimS(trimPfx(tag, "asn1:"))
		tag = trim(tag, `"`)
	}
	var o Options
	if tag == "" {
		return o, nil
	}
	for _, tok := range split(tag, ",") {
		tok = trimS(tok)
		switch {
		case tok == "":
		case tok == "-":
			// handled by the caller (field ignored entirely)
		case tok == "explicit":
			o.Explicit = true
		case tok == "implicit":
			o.Explicit = false
		case tok == "optional":
			o.Optional = true
		case tok == "omitempty":
			o.OmitEmpty = true
		case tok == "set":
			o.Set = true
		case tok == "application":
			o.SetClass(ClassApplication)
		case tok == "private":
			o.SetClass(ClassPrivate)
		case tok == "universal":
			o.SetClass(ClassUniversal)
		case tok == "context":
			o.SetClass(ClassContextSpecific)
		case hasPfx(tok, "tag:"):
			n, err := atoi(trimPfx(tok, "tag:"))
			if err != nil || n < 0 {
				return o, newErrf(KindUnsupported, 0, "invalid tag number in struct tag: %q", tok)
			}
			o.SetTag(n)
		case hasPfx(tok, "default:"):
			o.HasDefault = true
			o.Default = trimPfx(tok, "default:")
		default:
			return o, newErrf(KindUnsupported, 0, "unrecognized asn1 struct tag token: %q", tok)
		}
	}
	return o, nil
}

func trim(s, cut string) string {
	for hasPfx(s, cut) {
		s = s[len(cut):]
	}
	for len(s) >= len(cut) && s[len(s)-len(cut):] == cut {
		s = s[:len(s)-len(cut)]
	}
	return s
}

// defaultEquals reports whether v's textual form matches the literal
// DEFAULT recorded in o (component 4.D's "Literal default protocol",
// spec.md §6). Supported kinds: bool, all integer kinds, string, and
// any type implementing fmt.Stringer (covers Integer, ObjectIdentifier,
// etc.).
func (o Options) defaultEquals(v reflect.Value) bool {
	if !o.HasDefault {
		return false
	}
	return stringifyReflect(v) == o.Default
}

func stringifyReflect(v reflect.Value) string {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if str, ok := v.Interface().(interface{ String() string }); ok {
		return str.String()
	}
	switch v.Kind() {
	case reflect.Bool:
		return boolToStr(v.Bool())
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return itoa(int(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return itoa(int(v.Uint()))
	}
	return ""
}

func boolToStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
