package main

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/mkeeler/hexload/convert"
	"github.com/mkeeler/hexload/spacedhex"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	type testcase struct {
		err    error
		expect int
	}

	testcases := map[string]testcase{
		"success":          {err: nil, expect: statusOK},
		"null pointer":     {err: errNullPointer, expect: statusInvalidInput},
		"buffer too small": {err: &spacedhex.BufferTooSmallError{Need: 3, Have: 1}, expect: statusBufferTooSmall},
		"cancelled":        {err: context.Canceled, expect: statusFailed},
		"anything else":    {err: errors.New("boom"), expect: statusFailed},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.expect, statusOf(tc.err))
		})
	}
}

func TestConvertInto(t *testing.T) {
	var out bytes.Buffer

	original := converter
	defer func() { converter = original }()

	c, err := convert.New(convert.WithoutDelay(), convert.WithDiagnostics(&out))
	require.NoError(t, err)
	converter = c

	seedConverter(1234)

	dst := make([]byte, 9)
	require.Equal(t, statusOK, convertInto(dst, []byte{0xAB, 0x12, 0x00}, 5))
	require.Equal(t, "AB 12 00\x00", string(dst))
	require.Equal(t, "[C function 5] AB 12 00 --> timeout: 0\n", out.String())

	small := []byte("xx")
	require.Equal(t, statusBufferTooSmall, convertInto(small, []byte("abc"), 6))
	require.Equal(t, "xx", string(small))

	empty := []byte{'x'}
	require.Equal(t, statusOK, convertInto(empty, nil, 7))
	require.Equal(t, []byte{0}, empty)
}

func TestOutputSpan(t *testing.T) {
	type testcase struct {
		have   uint64
		n      int
		expect int
	}

	testcases := map[string]testcase{
		"exact":         {have: 9, n: 3, expect: 9},
		"too small":     {have: 2, n: 3, expect: 2},
		"larger":        {have: 4096, n: 3, expect: 9},
		"empty input":   {have: 64, n: 0, expect: 1},
		"zero length":   {have: 0, n: 3, expect: 0},
		"max size_t":    {have: math.MaxUint64, n: 3, expect: 9},
		"above max int": {have: uint64(math.MaxInt) + 1, n: 2, expect: 6},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.expect, outputSpan(tc.have, tc.n))
		})
	}
}
