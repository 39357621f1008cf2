// Command libhex builds the conversion as a C shared library for hosts such
// as Python's ctypes:
//
//	go build -buildmode=c-shared -o libhex.so ./cmd/libhex
//
// The exported functions are
//
//	void init_rand(int seed);
//	int convert_to_hex(const char *input, char *output, size_t output_len, int call_id);
//
// convert_to_hex returns 0 on success, 1 when input or output is NULL and 2
// when output_len is below 3*strlen(input). An empty input still needs one
// byte for the terminator. Nothing is written to output unless it returns 0.
package main

/*
#include <stddef.h>
*/
import "C"

import (
	"unsafe"
)

//export init_rand
func init_rand(seed C.int) {
	seedConverter(int64(seed))
}

//export convert_to_hex
func convert_to_hex(input *C.char, output *C.char, outputLen C.size_t, callID C.int) C.int {
	if input == nil || output == nil {
		return C.int(statusOf(errNullPointer))
	}

	src := []byte(C.GoString(input))
	dst := unsafe.Slice((*byte)(unsafe.Pointer(output)), outputSpan(uint64(outputLen), len(src)))

	return C.int(convertInto(dst, src, int(callID)))
}

func main() {}
