// Package text is the string level JSON encoding used by the canonical and wire
// forms of an event: quoting, escaping and object keys, written as append style
// encoders so a whole event is produced in one buffer.
package text

// JSONKey generates the JSON format for an object key and terminates with the colon.
func JSONKey(dst, k []byte) (b []byte) {
	dst = append(dst, '"')
	dst = append(dst, k...)
	dst = append(dst, '"', ':')
	b = dst
	return
}
