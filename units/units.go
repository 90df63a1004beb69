// Package units names data sizes in bytes, in both the ISO base 10 and the
// binary base 2 forms.
package units

const (
	Kilobyte = 1000
	Kb       = Kilobyte
	Megabyte = Kilobyte * Kilobyte
	Mb       = Megabyte
	Kibibyte = 1 << 10
	KiB      = Kibibyte
	Mebibyte = Kibibyte << 10
	MiB      = Mebibyte
)
