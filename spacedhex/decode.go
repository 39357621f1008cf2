package spacedhex

// DecodedLen returns the number of bytes encoded by text of length n, or -1
// if no well formed encoding has that length.
func DecodedLen(n int) int {
	if n == 0 {
		return 0
	}
	if (n+1)%3 != 0 {
		return -1
	}
	return (n + 1) / 3
}

// Decode parses spaced hex text from src into dst and returns the number of
// bytes written. Upper and lower case digits are accepted; pairs must be
// separated by exactly one space.
func Decode(dst, src []byte) (int, error) {
	n := DecodedLen(len(src))
	if n < 0 {
		return 0, &InvalidInputError{Offset: len(src), Reason: "truncated hex pair"}
	}
	if len(dst) < n {
		return 0, &BufferTooSmallError{Need: n, Have: len(dst)}
	}

	for i := 0; i < n; i++ {
		off := i * 3
		if i > 0 && src[off-1] != separator {
			return i, &InvalidInputError{Offset: off - 1, Reason: "expected a single space between pairs"}
		}
		hi, ok := fromHexChar(src[off])
		if !ok {
			return i, &InvalidInputError{Offset: off, Reason: "invalid hex digit"}
		}
		lo, ok := fromHexChar(src[off+1])
		if !ok {
			return i, &InvalidInputError{Offset: off + 1, Reason: "invalid hex digit"}
		}
		dst[i] = hi<<4 | lo
	}
	return n, nil
}

// DecodeString returns the bytes represented by the spaced hex string s.
func DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	n := DecodedLen(len(src))
	if n < 0 {
		return nil, &InvalidInputError{Offset: len(src), Reason: "truncated hex pair"}
	}

	dst := make([]byte, n)
	written, err := Decode(dst, src)
	return dst[:written], err
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
