package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mkeeler/hexload/convert"
	"github.com/mkeeler/hexload/spacedhex"
)

const (
	statusOK             = 0
	statusInvalidInput   = 1
	statusBufferTooSmall = 2
	statusFailed         = 3
)

var errNullPointer = fmt.Errorf("%w: NULL pointer", spacedhex.ErrInvalidInput)

// converter is shared by every thread of the host process. Its generator is
// guarded by the converter's own lock.
var converter = newConverter()

func newConverter() *convert.Converter {
	c, err := convert.New(convert.WithDiagnostics(os.Stdout))
	if err != nil {
		// the default delay range is always valid
		panic(err)
	}
	return c
}

func seedConverter(seed int64) {
	converter.Seed(seed)
}

// outputSpan is how much of a caller buffer of have bytes a conversion of n
// input bytes may touch. It never exceeds what the encoding needs, so huge
// size_t values cannot overflow the Go slice length.
func outputSpan(have uint64, n int) int {
	need := uint64(spacedhex.BufferLen(n))
	if have > need {
		return int(need)
	}
	return int(have)
}

func convertInto(dst, src []byte, callID int) int {
	_, err := converter.Convert(context.Background(), dst, src, callID)
	return statusOf(err)
}

func statusOf(err error) int {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, spacedhex.ErrInvalidInput):
		return statusInvalidInput
	case errors.Is(err, spacedhex.ErrBufferTooSmall):
		return statusBufferTooSmall
	default:
		return statusFailed
	}
}
