package asn1

/*
tlv.go ties components 4.A and 4.B together: it assembles a full
Tag-Length-Value unit from a Cursor, resolving indefinite-length
content (by walking nested children to find the matching
end-of-contents sentinel) into a single contiguous, zero-copy content
slice exactly as spec.md §3's "Header" data model describes.
*/

// TLV is a single decoded Tag-Length-Value unit. Value is always a
// concrete, resolved content slice — indefinite lengths are resolved
// against the matching end-of-contents sentinel at decode time, so
// downstream code never has to special-case indefinite vs definite.
type TLV struct {
	Class    int
	Tag      int
	Compound bool
	Length   int // resolved content length
	Value    []byte
}

// PeekHeader reports the class/tag/compound of the next TLV in c
// without consuming anything. Used by the constructed composer and
// CHOICE dispatcher for peek-and-match (spec.md §4.E/§4.F).
func PeekHeader(c Cursor) (class, tag int, compound bool, err error) {
	class, tag, compound, _, err = decodeIdentifier(c)
	return
}

// ReadTLV decodes one complete TLV from c under the given rule,
// returning the remainder cursor positioned just past it.
func ReadTLV(c Cursor, rule EncodingRule) (tlv TLV, rest Cursor, err error) {
	class, tag, compound, idLen, err := decodeIdentifier(c)
	if err != nil {
		return
	}
	afterID, err := c.Advance(idLen)
	if err != nil {
		return
	}
	length, lenLen, err := decodeLength(afterID)
	if err != nil && rule.canonical() {
		return
	}
	if err != nil {
		if asErr, ok := err.(*Error); !ok || asErr.Kind != KindNonCanonicalLength {
			// a genuine decode failure (not just a DER-canonicality
			// complaint on an otherwise well-formed BER length)
			return
		}
	}
	lenErr := err
	err = nil

	afterLen, aerr := afterID.Advance(lenLen)
	if aerr != nil {
		err = aerr
		return
	}

	if length == -1 {
		if !rule.allowsIndefinite() {
			err = newErr(KindInvalidLength, c.Position(), "indefinite length not permitted by encoding rule")
			return
		}
		if !compound {
			err = newErr(KindInvalidHeader, c.Position(), "indefinite length requires constructed bit")
			return
		}
		var contentLen int
		if contentLen, err = findIndefiniteEnd(afterLen, rule); err != nil {
			return
		}
		var content []byte
		if content, _, err = afterLen.Take(contentLen); err != nil {
			return
		}
		afterContent, _ := afterLen.Advance(contentLen)
		if rest, err = afterContent.Advance(2); err != nil {
			return
		}
		tlv = TLV{Class: class, Tag: tag, Compound: compound, Length: contentLen, Value: content}
		return
	}

	if lenErr != nil {
		// BER tolerates non-canonical definite lengths; DER already
		// returned above.
	}

	var content []byte
	if content, rest, err = afterLen.Take(length); err != nil {
		err = newErr(KindIncomplete, afterLen.Position(), "truncated TLV content")
		return
	}
	tlv = TLV{Class: class, Tag: tag, Compound: compound, Length: length, Value: content}
	return
}

// findIndefiniteEnd walks child TLVs starting at c (the content region
// of an indefinite-length TLV) until it finds the two-byte
// end-of-contents sentinel, returning the number of content bytes
// that precede it. Nested indefinite-length children are skipped
// recursively so the sentinel search never mistakes a nested EOC for
// the enclosing one.
func findIndefiniteEnd(c Cursor, rule EncodingRule) (contentLen int, err error) {
	pos := c
	for {
		if pos.Len() < 2 {
			err = newErr(KindIncomplete, pos.Position(), "missing end-of-contents sentinel")
			return
		}
		b := pos.Bytes()
		if b[0] == 0x00 && b[1] == 0x00 {
			contentLen = int(pos.Position() - c.Position())
			return
		}

		var class, tag, idLen int
		var compound bool
		if class, tag, compound, idLen, err = decodeIdentifier(pos); err != nil {
			return
		}
		_ = class
		_ = tag
		var afterID Cursor
		if afterID, err = pos.Advance(idLen); err != nil {
			return
		}
		var length, lenLen int
		length, lenLen, err = decodeLength(afterID)
		if err != nil {
			if rule.canonical() {
				return
			}
			if asErr, ok := err.(*Error); !ok || asErr.Kind != KindNonCanonicalLength {
				return
			}
		}
		err = nil
		var afterLen Cursor
		if afterLen, err = afterID.Advance(lenLen); err != nil {
			return
		}
		if length == -1 {
			if !compound {
				err = newErr(KindInvalidHeader, pos.Position(), "indefinite length requires constructed bit")
				return
			}
			var childLen int
			if childLen, err = findIndefiniteEnd(afterLen, rule); err != nil {
				return
			}
			var afterContent Cursor
			if afterContent, err = afterLen.Advance(childLen); err != nil {
				return
			}
			if pos, err = afterContent.Advance(2); err != nil {
				return
			}
		} else {
			if pos, err = afterLen.Advance(length); err != nil {
				return
			}
		}
	}
}

// WriteTLV appends the encoded identifier, length, and content octets
// for (class, tag, compound, content) to dst. Indefinite-length
// encoding is only ever emitted when explicitly requested and the
// rule permits it (BER only; DER always emits definite lengths).
func WriteTLV(dst []byte, class, tag int, compound bool, content []byte, rule EncodingRule, indefinite bool) []byte {
	dst = encodeIdentifier(dst, class, tag, compound)
	if indefinite && rule.allowsIndefinite() {
		dst = append(dst, 0x80)
		dst = append(dst, content...)
		dst = append(dst, 0x00, 0x00)
		return dst
	}
	dst = encodeLength(dst, len(content), false)
	return append(dst, content...)
}
