package text

// AppendBytesClosure is an encoder that appends the encoded form of src to dst.
type AppendBytesClosure func(dst, src []byte) []byte

// Noop appends src unchanged.
func Noop(dst, src []byte) []byte { return append(dst, src...) }

// AppendQuote wraps the output of ac in double quotes.
func AppendQuote(dst, src []byte, ac AppendBytesClosure) []byte {
	dst = append(dst, '"')
	dst = ac(dst, src)
	dst = append(dst, '"')
	return dst
}

// Quote appends src in double quotes without any escaping.
func Quote(dst, src []byte) []byte { return AppendQuote(dst, src, Noop) }

// AppendBracket wraps the output of ac in square brackets.
func AppendBracket(dst, src []byte, ac AppendBytesClosure) []byte {
	dst = append(dst, '[')
	dst = ac(dst, src)
	dst = append(dst, ']')
	return dst
}

// AppendList appends each of src encoded by ac, with separator between them.
func AppendList(dst []byte, src [][]byte, separator byte,
	ac AppendBytesClosure) []byte {
	last := len(src) - 1
	for i := range src {
		dst = ac(dst, src[i])
		if i < last {
			dst = append(dst, separator)
		}
	}
	return dst
}
