package text

const hexDigits = "0123456789abcdef"

// NostrEscape for JSON encoding according to RFC8259, matching the escaping
// used when computing event ids.
//
// NIP-01 requires that the following are escaped, and that everything else is
// written verbatim as UTF-8:
//
//	- A line break, 0x0A, as \n
//	- A double quote, 0x22, as \"
//	- A backslash, 0x5C, as \\
//	- A carriage return, 0x0D, as \r
//	- A tab character, 0x09, as \t
//	- A backspace, 0x08, as \b
//	- A form feed, 0x0C, as \f
//
// The remaining control codes below 0x20 cannot appear raw in a JSON string,
// and the reference libraries write them as \u00XX with lowercase hex digits,
// so that is done here too. The solidus '/', DEL 0x7F and the line and
// paragraph separators U+2028 and U+2029 are NOT escaped.
func NostrEscape(dst, src []byte) []byte {
	for _, c := range src {
		switch {
		case c == '"':
			dst = append(dst, '\\', '"')
		case c == '\\':
			dst = append(dst, '\\', '\\')
		case c == '\b':
			dst = append(dst, '\\', 'b')
		case c == '\t':
			dst = append(dst, '\\', 't')
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\f':
			dst = append(dst, '\\', 'f')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c < 0x20:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		default:
			dst = append(dst, c)
		}
	}
	return dst
}

// NostrEscapeString is NostrEscape for a string source.
func NostrEscapeString(dst []byte, src string) []byte {
	return NostrEscape(dst, []byte(src))
}
