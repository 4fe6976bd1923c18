package asn1

/*
util.go contains small string/number helpers, kept as thin wrappers
over the standard library the way the teacher's common.go does, so
call sites read uniformly (itoa/atoi) rather than mixing strconv and
hand-rolled conversions.
*/

import (
	"strconv"
	"strings"
)

func itoa(i int) string       { return strconv.Itoa(i) }
func itoa64(i int64) string  { return strconv.FormatInt(i, 10) }
func atoi(s string) (int, error) { return strconv.Atoi(s) }
func hasPfx(s, pfx string) bool  { return strings.HasPrefix(s, pfx) }
func trimPfx(s, pfx string) string { return strings.TrimPrefix(s, pfx) }
func trimS(s string) string      { return strings.TrimSpace(s) }
func lc(s string) string         { return strings.ToLower(s) }
func split(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}
func join(parts []string, sep string) string { return strings.Join(parts, sep) }
func strInSlice(s string, set []string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
