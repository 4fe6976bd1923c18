package asn1

/*
cursor.go implements component 4.A: a borrowed byte-slice view with
origin offset tracking. Cursor is a value type — cloning it never
copies the underlying bytes, only the (slice header, base offset)
pair, matching spec.md §3's "Byte cursor" invariant.
*/

// Cursor is a read-only, zero-copy view over a byte region. base is
// the absolute offset of data[0] within the original top-level input,
// used so error positions are always reported relative to the origin
// buffer rather than to whatever sub-slice happened to fail.
type Cursor struct {
	data []byte
	base int64
}

// NewCursor returns a Cursor over data with origin offset 0.
func NewCursor(data []byte) Cursor { return Cursor{data: data} }

// Position returns the absolute offset, from the origin buffer, of
// the cursor's current front byte.
func (c Cursor) Position() int64 { return c.base }

// Len returns the number of bytes remaining in the cursor.
func (c Cursor) Len() int { return len(c.data) }

// Bytes returns the cursor's remaining bytes without consuming them.
// The returned slice aliases the original input; callers that need an
// independent copy must clone it themselves.
func (c Cursor) Bytes() []byte { return c.data }

// IsEmpty reports whether no bytes remain.
func (c Cursor) IsEmpty() bool { return len(c.data) == 0 }

// Take returns the front n bytes and a cursor over the remainder.
// Fails with KindIncomplete if n exceeds the remaining length.
func (c Cursor) Take(n int) (front []byte, rest Cursor, err error) {
	if n < 0 || n > len(c.data) {
		err = newErrf(KindIncomplete, c.base, "need %d bytes, have %d", n, len(c.data))
		return
	}
	front = c.data[:n]
	rest = Cursor{data: c.data[n:], base: c.base + int64(n)}
	return
}

// Advance skips n bytes, returning the cursor positioned after them.
func (c Cursor) Advance(n int) (Cursor, error) {
	_, rest, err := c.Take(n)
	return rest, err
}

// PeekByte returns the front byte without consuming it.
func (c Cursor) PeekByte() (byte, error) {
	if len(c.data) == 0 {
		return 0, newErr(KindIncomplete, c.base, "need 1 byte, have 0")
	}
	return c.data[0], nil
}
