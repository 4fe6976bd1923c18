package asn1

/*
int.go implements the ASN.1 INTEGER type (tag 2), grounded on the
teacher's int.go. A zero-value Integer is int64(0); magnitudes that
overflow int64 promote to a *big.Int internally, transparently to the
caller.
*/

import "math/big"

// Integer is the unbounded ASN.1 INTEGER type. Values that fit in an
// int64 are stored natively; larger magnitudes promote to *big.Int.
type Integer struct {
	big    bool
	native int64
	bigInt *big.Int
}

// NewInteger builds an Integer from x, optionally checked against one
// or more Constraint values (component "Constraint system", grounded
// on golang.org/x/exp/constraints via constr.go). Accepted input types:
// int, int32, int64, uint64, string (decimal), []byte (big-endian two's
// complement), *big.Int, or an existing Integer.
func NewInteger(x any, constraints ...Constraint) (Integer, error) {
	i, err := assertInteger(x)
	if err != nil {
		return i, err
	}
	for _, c := range constraints {
		if err = c(i); err != nil {
			return Integer{}, err
		}
	}
	return i, nil
}

func assertInteger(x any) (i Integer, err error) {
	switch v := x.(type) {
	case int:
		i = Integer{native: int64(v)}
	case int32:
		i = Integer{native: int64(v)}
	case int64:
		i = Integer{native: v}
	case uint64:
		i = uint64ToInteger(v)
	case []byte:
		i = beBytesToInteger(v)
	case *big.Int:
		i = bigToInteger(v)
	case string:
		i, err = stringToInteger(v)
	case Integer:
		i = v
	default:
		err = newErrf(KindUnsupported, 0, "INTEGER: unsupported constructor input type %T", x)
	}
	return
}

// Tag returns TagInteger.
func (Integer) Tag() int { return TagInteger }

// IsBig reports whether the receiver's magnitude overflows int64.
func (i Integer) IsBig() bool { return i.big }

// Native returns the int64 value. Only meaningful when !IsBig().
func (i Integer) Native() int64 { return i.native }

// Big returns the *big.Int form of the receiver, constructing one from
// the native value when the receiver is not already big.
func (i Integer) Big() *big.Int {
	if i.big {
		return i.bigInt
	}
	return big.NewInt(i.native)
}

func (i Integer) String() string {
	if i.big {
		return i.bigInt.String()
	}
	return itoa64(i.native)
}

// Cmp returns -1, 0, or +1 as i is less than, equal to, or greater
// than other.
func (i Integer) Cmp(other Integer) int {
	if !i.big && !other.big {
		switch {
		case i.native < other.native:
			return -1
		case i.native > other.native:
			return 1
		default:
			return 0
		}
	}
	return i.Big().Cmp(other.Big())
}

func (i Integer) encodeContent(_ Options) ([]byte, error) {
	return encodeIntegerContent(i.Big()), nil
}

func (i *Integer) decodeContent(content []byte, rule EncodingRule, _ Options) error {
	if err := requireNonEmpty(TagInteger, content); err != nil {
		return err
	}
	if rule.canonical() && len(content) > 1 && isRedundantLeadingByte(content) {
		return newErr(KindInvalidEncoding, 0, "INTEGER: non-minimal two's complement encoding")
	}
	bi := decodeIntegerContent(content)
	*i = bigToInteger(bi)
	return nil
}

// isRedundantLeadingByte reports whether content's leading octet could
// be dropped without changing the represented value — the X.690 §8.3.2
// minimality rule: the first nine bits may not be all 0 or all 1.
func isRedundantLeadingByte(content []byte) bool {
	if content[0] == 0x00 {
		return content[1]&0x80 == 0
	}
	if content[0] == 0xFF {
		return content[1]&0x80 != 0
	}
	return false
}

func encodeIntegerContent(i *big.Int) []byte {
	if i.Sign() >= 0 {
		b := i.Bytes()
		if len(b) == 0 {
			return []byte{0x00}
		}
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}
	abs := new(big.Int).Abs(i)
	n := (abs.BitLen() + 7) / 8
	if n == 0 {
		n = 1
	}
	min := new(big.Int).Lsh(big.NewInt(1), uint(8*n-1))
	min.Neg(min)
	if i.Cmp(min) < 0 {
		n++
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	value := new(big.Int).Add(mod, i)
	b := value.Bytes()
	for len(b) < n {
		b = append([]byte{0x00}, b...)
	}
	return b
}

func decodeIntegerContent(content []byte) *big.Int {
	val := new(big.Int).SetBytes(content)
	if content[0]&0x80 != 0 {
		twoPow := new(big.Int).Lsh(big.NewInt(1), uint(len(content)*8))
		val.Sub(val, twoPow)
	}
	return val
}

func beBytesToInteger(b []byte) Integer {
	bi := decodeIntegerContent(append([]byte(nil), b...))
	return bigToInteger(bi)
}

func bigToInteger(n *big.Int) Integer {
	if n.IsInt64() {
		return Integer{native: n.Int64()}
	}
	return Integer{big: true, bigInt: n}
}

func uint64ToInteger(u uint64) Integer {
	if u <= 1<<63-1 {
		return Integer{native: int64(u)}
	}
	return Integer{big: true, bigInt: new(big.Int).SetUint64(u)}
}

func stringToInteger(s string) (Integer, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Integer{}, newErrf(KindInvalidEncoding, 0, "INTEGER: invalid decimal literal %q", s)
	}
	return bigToInteger(n), nil
}
