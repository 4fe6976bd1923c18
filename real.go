package asn1

/*
real.go implements the ASN.1 REAL type (tag 9) per X.690 §8.5,
grounded on the teacher's real.go but narrowed to the binary (base 2)
encoding form DER requires — the only form this package's Real
constructor ever produces, and the only non-special form its decoder
accepts. The ISO-6093 decimal character forms (NR1/NR2/NR3) are not
implemented: the decoder rejects them with KindUnsupported.
*/

import (
	"math"
	"math/big"
)

// Real is the ASN.1 REAL type, backed by float64.
type Real float64

func (Real) Tag() int { return TagReal }

func (r Real) encodeContent(_ Options) ([]byte, error) {
	f := float64(r)
	switch {
	case f == 0:
		if math.Signbit(f) {
			return []byte{0x43}, nil // minus zero
		}
		return nil, nil // plus zero: empty content
	case math.IsInf(f, 1):
		return []byte{0x40}, nil
	case math.IsInf(f, -1):
		return []byte{0x41}, nil
	case math.IsNaN(f):
		return []byte{0x42}, nil
	}

	sign := f < 0
	mantissa, exp := frexpBinary(math.Abs(f))

	expBytes := encodeIntegerContent(big.NewInt(int64(exp)))
	mantissaBytes := new(big.Int).SetUint64(mantissa).Bytes()

	first := byte(0x80) // binary encoding, base 2, scaling factor 0
	if sign {
		first |= 0x40
	}

	var content []byte
	switch {
	case len(expBytes) == 1:
		content = append([]byte{first}, expBytes...)
	case len(expBytes) == 2:
		content = append([]byte{first | 0x01}, expBytes...)
	case len(expBytes) == 3:
		content = append([]byte{first | 0x02}, expBytes...)
	default:
		content = append([]byte{first | 0x03, byte(len(expBytes))}, expBytes...)
	}
	content = append(content, mantissaBytes...)
	return content, nil
}

func (r *Real) decodeContent(content []byte, _ EncodingRule, _ Options) error {
	if len(content) == 0 {
		*r = 0
		return nil
	}
	first := content[0]
	switch first {
	case 0x40:
		*r = Real(math.Inf(1))
		return nil
	case 0x41:
		*r = Real(math.Inf(-1))
		return nil
	case 0x42:
		*r = Real(math.NaN())
		return nil
	case 0x43:
		*r = Real(math.Copysign(0, -1))
		return nil
	}
	if first&0x80 == 0 {
		return newErr(KindUnsupported, 0, "REAL: decimal (NR1/NR2/NR3) character form is not supported")
	}
	if (first>>4)&0x3 != 0 {
		return newErr(KindUnsupported, 0, "REAL: only base-2 binary encoding is supported")
	}
	sign := first&0x40 != 0

	body := content[1:]
	var expLen int
	switch first & 0x03 {
	case 0:
		expLen = 1
	case 1:
		expLen = 2
	case 2:
		expLen = 3
	default:
		if len(body) == 0 {
			return newErr(KindIncomplete, 0, "REAL: truncated exponent-length octet")
		}
		expLen = int(body[0])
		body = body[1:]
	}
	if len(body) < expLen {
		return newErr(KindIncomplete, 0, "REAL: truncated exponent field")
	}
	exp := decodeIntegerContent(body[:expLen]).Int64()
	mantissaBytes := body[expLen:]
	if len(mantissaBytes) == 0 {
		return newErr(KindInvalidEncoding, 0, "REAL: missing mantissa field")
	}
	mantissa := new(big.Int).SetBytes(mantissaBytes)

	f := ldexpBig(mantissa, int(exp))
	if sign {
		f = -f
	}
	*r = Real(f)
	return nil
}

// frexpBinary decomposes f (f > 0) into an odd (or zero) integer
// mantissa and an exponent such that f == mantissa * 2^exp — the
// canonical minimal form DER requires (X.690 §11.3.1).
func frexpBinary(f float64) (mantissa uint64, exp int) {
	frac, e := math.Frexp(f)
	m := uint64(frac * (1 << 53))
	e -= 53
	for m != 0 && m%2 == 0 {
		m /= 2
		e++
	}
	return m, e
}

func ldexpBig(mantissa *big.Int, exp int) float64 {
	f := new(big.Float).SetInt(mantissa)
	f.SetMantExp(f, exp)
	out, _ := f.Float64()
	return out
}
