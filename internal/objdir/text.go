package objdir

import (
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

// DecodeUTF16 converts UTF-16 code units to a string. Unpaired surrogates are
// replaced with U+FFFD and null characters are kept, since object manager
// strings carry an explicit length rather than a terminator.
func DecodeUTF16(s []uint16) string {
	if len(s) == 0 {
		return ""
	}
	return string(utf16.Decode(s))
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUTF16Bytes converts little-endian UTF-16 bytes to a string, with the
// same replacement rules as [DecodeUTF16]. A trailing odd byte, which a
// malformed byte length can produce, is replaced as well.
func DecodeUTF16Bytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	// the x/text decoder substitutes U+FFFD for invalid input, so it never
	// returns an error
	s, _ := utf16le.NewDecoder().Bytes(b)
	return string(s)
}

// EncodeUTF16 converts a string to UTF-16 code units, without a terminator.
func EncodeUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}
