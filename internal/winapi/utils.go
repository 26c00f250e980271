//go:build windows

package winapi

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// maxUnicodeStringChars is the largest number of UTF-16 code units a
// UNICODE_STRING can describe, since its lengths are byte counts held in a
// uint16.
const maxUnicodeStringChars = 32767

type UnicodeString struct {
	Length        uint16
	MaximumLength uint16
	Buffer        *uint16
}

// Bytes returns the little-endian UTF-16 bytes described by the UnicodeString
// without copying them. The result is only valid for as long as the memory
// behind `uni.Buffer` is.
//
// UnicodeString is not guaranteed to be null terminated, therefore the
// UnicodeString's Length field bounds the slice.
func (uni UnicodeString) Bytes() []byte {
	if uni.Buffer == nil || uni.Length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(uni.Buffer)), int(uni.Length))
}

// NewUnicodeString allocates a new UnicodeString and copies `s` into
// the buffer of the new UnicodeString.
func NewUnicodeString(s string) (*UnicodeString, error) {
	buf, err := windows.UTF16FromString(s)
	if err != nil {
		return nil, err
	}
	// `buf` carries an additional trailing null character that is not
	// part of the string's length
	length := len(buf) - 1
	if length > maxUnicodeStringChars {
		return nil, syscall.ENAMETOOLONG
	}
	uni := &UnicodeString{
		Length:        uint16(length * 2),
		MaximumLength: uint16(length * 2),
		Buffer:        &buf[0],
	}
	return uni, nil
}

// NewEmptyUnicodeString returns a zero length UnicodeString that can be filled
// by a call into ntdll. Only the first 32767 characters of `buf` are usable.
func NewEmptyUnicodeString(buf []uint16) UnicodeString {
	if len(buf) == 0 {
		return UnicodeString{}
	}
	n := min(len(buf), maxUnicodeStringChars)
	return UnicodeString{
		MaximumLength: uint16(n * 2),
		Buffer:        &buf[0],
	}
}
