// sum.go — one-shot hashing of whole strings and byte slices.
package jhash

// String returns the finished hash of s.
func String(s string) uint32 {
	v := Seed
	for i := 0; i < len(s); i++ {
		v = mix(v, s[i])
	}
	return finish(v)
}

// Bytes returns the finished hash of p.
func Bytes(p []byte) uint32 {
	v := Seed
	for _, b := range p {
		v = mix(v, b)
	}
	return finish(v)
}
