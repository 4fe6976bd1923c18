package asn1

/*
time.go implements UTCTime (tag 23) and GeneralizedTime (tag 24),
grounded on the teacher's time.go, narrowed to the DER-canonical wire
formats (X.680 §47, X.690 §11.7-8): seconds always present, fractional
seconds omitted, and the zone always literal "Z" (UTC). Under BER the
decoder also accepts looser variants (UTCTime without seconds;
GeneralizedTime without minutes or seconds, or with fractional
seconds); under DER it requires seconds. Local-time offsets are not
accepted under either rule. Re-encoding always emits the canonical
form.
*/

import "time"

const (
	utcTimeLayout        = "060102150405Z"
	generalizedTimeLayout = "20060102150405Z"
)

// UTCTime is the ASN.1 UTCTime type. Its two-digit year is interpreted
// per X.680 §47.3: 00-49 maps to 20xx, 50-99 to 19xx.
type UTCTime struct {
	time.Time
}

// NewUTCTime builds a UTCTime from t, truncated to whole seconds and
// normalized to UTC.
func NewUTCTime(t time.Time) UTCTime {
	return UTCTime{t.UTC().Truncate(time.Second)}
}

func (UTCTime) Tag() int { return TagUTCTime }

func (u UTCTime) encodeContent(_ Options) ([]byte, error) {
	return []byte(u.Time.UTC().Format(utcTimeLayout)), nil
}

func (u *UTCTime) decodeContent(content []byte, rule EncodingRule, _ Options) error {
	s := string(content)
	if rule.canonical() && len(s) != len(utcTimeLayout) {
		return newErrf(KindInvalidEncoding, 0, "UTCTime: DER requires the YYMMDDHHMMSSZ form, got %q", s)
	}
	t, err := parseUTCTime(s)
	if err != nil {
		return wrapErr(KindInvalidEncoding, 0, "UTCTime: "+s, err)
	}
	u.Time = t
	return nil
}

func parseUTCTime(s string) (time.Time, error) {
	for _, layout := range []string{"060102150405Z", "0601021504Z"} {
		if t, err := time.Parse(layout, s); err == nil {
			return fixUTCTimeCentury(t), nil
		}
	}
	return time.Time{}, newErrf(KindInvalidEncoding, 0, "UTCTime: unrecognized format %q", s)
}

func fixUTCTimeCentury(t time.Time) time.Time {
	y := t.Year() % 100
	century := 2000
	if y >= 50 {
		century = 1900
	}
	return time.Date(century+y, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// GeneralizedTime is the ASN.1 GeneralizedTime type — a UTCTime with a
// four-digit year and no century ambiguity.
type GeneralizedTime struct {
	time.Time
}

// NewGeneralizedTime builds a GeneralizedTime from t, truncated to
// whole seconds and normalized to UTC.
func NewGeneralizedTime(t time.Time) GeneralizedTime {
	return GeneralizedTime{t.UTC().Truncate(time.Second)}
}

func (GeneralizedTime) Tag() int { return TagGeneralizedTime }

func (g GeneralizedTime) encodeContent(_ Options) ([]byte, error) {
	return []byte(g.Time.UTC().Format(generalizedTimeLayout)), nil
}

func (g *GeneralizedTime) decodeContent(content []byte, rule EncodingRule, _ Options) error {
	s := string(content)
	layouts := []string{
		generalizedTimeLayout,
		"200601021504Z",
		"2006010215Z",
		"20060102150405.999999999Z",
	}
	if rule.canonical() {
		layouts = []string{generalizedTimeLayout, "20060102150405.999999999Z"}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			g.Time = t.UTC()
			return nil
		}
	}
	return newErrf(KindInvalidEncoding, 0, "GeneralizedTime: unrecognized format %q", s)
}
