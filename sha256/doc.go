// Package sha256 is the hash used to derive event ids. It forwards to
// github.com/minio/sha256-simd, which selects the SHA-NI, AVX512 or ARM SHA2
// implementation at runtime where the CPU has one, and otherwise falls back to
// the standard library.
package sha256
