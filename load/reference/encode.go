package reference

import (
	"encoding/hex"
	"strings"

	"github.com/mkeeler/hexload/spacedhex"
)

// encode produces the same output as spacedhex.Encode by the long way round:
// plain hex from the standard library, upper cased and split into pairs.
func encode(dst, src []byte) (int, error) {
	need := spacedhex.BufferLen(len(src))
	if len(dst) < need {
		return 0, &spacedhex.BufferTooSmallError{Need: need, Have: len(dst)}
	}

	raw := strings.ToUpper(hex.EncodeToString(src))
	pairs := make([]string, 0, len(src))
	for i := 0; i < len(raw); i += 2 {
		pairs = append(pairs, raw[i:i+2])
	}

	n := copy(dst, strings.Join(pairs, " "))
	dst[n] = 0
	return n, nil
}
