// Package spacedhex encodes bytes as space separated uppercase hex pairs,
// e.g. []byte{0xAB, 0x12, 0x00} becomes "AB 12 00".
package spacedhex

const (
	hextable  = "0123456789ABCDEF"
	separator = ' '
)

// EncodedLen returns the length of the encoded text for n input bytes,
// not counting the terminator.
func EncodedLen(n int) int {
	if n <= 0 {
		return 0
	}
	return 3*n - 1
}

// BufferLen returns the capacity Encode requires for n input bytes. It is one
// more than EncodedLen to make room for the NUL terminator.
func BufferLen(n int) int {
	return EncodedLen(n) + 1
}

// Encode writes the spaced hex form of src into dst followed by a NUL byte
// and returns the number of bytes written before the terminator. If dst is
// shorter than BufferLen(len(src)) nothing is written and a
// *BufferTooSmallError is returned.
func Encode(dst, src []byte) (int, error) {
	need := BufferLen(len(src))
	if len(dst) < need {
		return 0, &BufferTooSmallError{Need: need, Have: len(dst)}
	}

	n := encode(dst, src)
	dst[n] = 0
	return n, nil
}

// AppendEncode appends the spaced hex form of src to dst, without a
// terminator, and returns the extended slice.
func AppendEncode(dst, src []byte) []byte {
	if len(src) == 0 {
		return dst
	}

	size := EncodedLen(len(src))
	start := len(dst)
	if cap(dst)-start < size {
		grown := make([]byte, start, start+size)
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:start+size]
	encode(dst[start:], src)
	return dst
}

// EncodeToString returns the spaced hex form of src.
func EncodeToString(src []byte) string {
	return string(AppendEncode(nil, src))
}

// encode assumes dst holds at least EncodedLen(len(src)) bytes.
func encode(dst, src []byte) int {
	j := 0
	for i, b := range src {
		if i > 0 {
			dst[j] = separator
			j++
		}
		dst[j] = hextable[b>>4]
		dst[j+1] = hextable[b&0x0F]
		j += 2
	}
	return j
}
