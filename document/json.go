package document

import (
	"math"
	"strconv"
)

const indentWidth = 2

// JSON returns the compact JSON encoding of the value.
func (v Value) JSON() string {
	return string(v.appendCompact(nil))
}

// JSONIndent returns the 2-space indented JSON encoding of the value.
// Mapping entries render in insertion order; keys still carrying the array
// marker render with their "[]" suffix verbatim.
func (v Value) JSONIndent() string {
	return string(v.appendIndented(nil, 0))
}

func (v Value) appendCompact(dst []byte) []byte {
	switch v.kind {
	default:
		return v.appendScalar(dst)

	case KindList:
		if len(v.items) == 0 {
			return append(dst, "[]"...)
		}

		dst = append(dst, '[')
		for i, item := range v.items {
			if i > 0 {
				dst = append(dst, ',')
			}

			dst = item.appendCompact(dst)
		}

		return append(dst, ']')

	case KindMapping:
		if v.mapping.Len() == 0 {
			return append(dst, "{}"...)
		}

		dst = append(dst, '{')
		for i, e := range v.mapping.Entries() {
			if i > 0 {
				dst = append(dst, ',')
			}

			dst = appendQuoted(dst, e.Key.String())
			dst = append(dst, ':')
			dst = e.Value.appendCompact(dst)
		}

		return append(dst, '}')
	}
}

func (v Value) appendIndented(dst []byte, depth int) []byte {
	switch v.kind {
	default:
		return v.appendScalar(dst)

	case KindList:
		if len(v.items) == 0 {
			return append(dst, "[]"...)
		}

		dst = append(dst, '[', '\n')
		for i, item := range v.items {
			if i > 0 {
				dst = append(dst, ',', '\n')
			}

			dst = appendPadding(dst, depth+1)
			dst = item.appendIndented(dst, depth+1)
		}

		dst = append(dst, '\n')
		dst = appendPadding(dst, depth)

		return append(dst, ']')

	case KindMapping:
		if v.mapping.Len() == 0 {
			return append(dst, "{}"...)
		}

		dst = append(dst, '{', '\n')
		for i, e := range v.mapping.Entries() {
			if i > 0 {
				dst = append(dst, ',', '\n')
			}

			dst = appendPadding(dst, depth+1)
			dst = appendQuoted(dst, e.Key.String())
			dst = append(dst, ':', ' ')
			dst = e.Value.appendIndented(dst, depth+1)
		}

		dst = append(dst, '\n')
		dst = appendPadding(dst, depth)

		return append(dst, '}')
	}
}

func (v Value) appendScalar(dst []byte) []byte {
	switch v.kind {
	default:
		// the zero Value renders like an absent JSON value
		return append(dst, "null"...)

	case KindString:
		return appendQuoted(dst, v.str)

	case KindInt:
		return strconv.AppendInt(dst, v.integer, 10)

	case KindFloat:
		return appendFloat(dst, v.float)

	case KindBool:
		return strconv.AppendBool(dst, v.boolean)
	}
}

func appendPadding(dst []byte, depth int) []byte {
	for range depth * indentWidth {
		dst = append(dst, ' ')
	}

	return dst
}

// appendFloat renders floats the way encoding/json does, extended with the
// NaN and Infinity tokens: measured traces legitimately contain NaN holes
// and the downstream consumer accepts the tokens.
func appendFloat(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "NaN"...)
	case math.IsInf(f, 1):
		return append(dst, "Infinity"...)
	case math.IsInf(f, -1):
		return append(dst, "-Infinity"...)
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}

	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// rewrite exponents like e-09 to e-9
		if n := len(dst); n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}

	return dst
}

const hexDigits = "0123456789abcdef"

// appendQuoted renders a JSON string literal. Quotes, backslashes, and
// control bytes are escaped; everything else, non-ASCII included, passes
// through as UTF-8.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')

	start := 0
	for i := range len(s) {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}

		dst = append(dst, s[start:i]...)
		switch c {
		case '"', '\\':
			dst = append(dst, '\\', c)
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		}

		start = i + 1
	}

	dst = append(dst, s[start:]...)

	return append(dst, '"')
}
