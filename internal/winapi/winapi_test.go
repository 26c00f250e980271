//go:build windows

package winapi

import (
	"strings"
	"syscall"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"github.com/Microsoft/ntobjls/internal/objdir"
)

func TestNewUnicodeString(t *testing.T) {
	for _, s := range []string{`\`, `\Global??`, `\Device\HarddiskVolume3`, "Ω-objects", "\U0001F600"} {
		uni, err := NewUnicodeString(s)
		if err != nil {
			t.Fatalf("NewUnicodeString(%q): %v", s, err)
		}

		wantLen := uint16(2 * len(objdir.EncodeUTF16(s)))
		if uni.Length != wantLen || uni.MaximumLength != wantLen {
			t.Fatalf("NewUnicodeString(%q): expected lengths %d/%d, got %d/%d", s, wantLen, wantLen, uni.Length, uni.MaximumLength)
		}
		if diff := cmp.Diff(s, objdir.DecodeUTF16Bytes(uni.Bytes())); diff != "" {
			t.Fatalf("NewUnicodeString(%q) buffer mismatch (-want +got):\n%s", s, diff)
		}
	}
}

func TestNewUnicodeStringTooLong(t *testing.T) {
	if _, err := NewUnicodeString(strings.Repeat("a", maxUnicodeStringChars)); err != nil {
		t.Fatalf("expected %d characters to fit in a Unicode String, got %v", maxUnicodeStringChars, err)
	}
	if _, err := NewUnicodeString(strings.Repeat("a", maxUnicodeStringChars+1)); err != syscall.ENAMETOOLONG {
		t.Fatalf("expected %v, got %v", syscall.ENAMETOOLONG, err)
	}
}

func TestUnicodeStringBytesUsesLength(t *testing.T) {
	buf := objdir.EncodeUTF16("SymbolicLinkXXXX")
	uni := UnicodeString{
		Length:        uint16(2 * len("SymbolicLink")),
		MaximumLength: uint16(2 * len(buf)),
		Buffer:        &buf[0],
	}
	if s := objdir.DecodeUTF16Bytes(uni.Bytes()); s != "SymbolicLink" {
		t.Fatalf("expected %q, got %q", "SymbolicLink", s)
	}
	// the bytes alias the buffer
	buf[0] = 's'
	if s := objdir.DecodeUTF16Bytes(uni.Bytes()); s != "symbolicLink" {
		t.Fatalf("expected %q, got %q", "symbolicLink", s)
	}
	if b := (UnicodeString{}).Bytes(); b != nil {
		t.Fatalf("expected nil bytes for an empty Unicode String, got %v", b)
	}
}

func TestNewEmptyUnicodeString(t *testing.T) {
	buf := make([]uint16, 2048)
	uni := NewEmptyUnicodeString(buf)
	if uni.Length != 0 || uni.MaximumLength != 4096 {
		t.Fatalf("expected lengths 0/4096, got %d/%d", uni.Length, uni.MaximumLength)
	}
	if uni.Buffer != &buf[0] {
		t.Fatal("expected Unicode String to reference the supplied buffer")
	}

	big := NewEmptyUnicodeString(make([]uint16, 40000))
	if big.MaximumLength != 2*maxUnicodeStringChars {
		t.Fatalf("expected maximum length clamped to %d, got %d", 2*maxUnicodeStringChars, big.MaximumLength)
	}
	if (NewEmptyUnicodeString(nil) != UnicodeString{}) {
		t.Fatal("expected zero Unicode String for an empty buffer")
	}
}

func TestNTSuccess(t *testing.T) {
	for _, tc := range []struct {
		status uint32
		want   bool
	}{
		{uint32(objdir.StatusSuccess), true},
		{uint32(objdir.StatusMoreEntries), true},
		{uint32(objdir.StatusNoMoreEntries), false},
		{uint32(objdir.StatusObjectNameNotFound), false},
		{uint32(objdir.StatusAccessDenied), false},
	} {
		if got := NTSuccess(tc.status); got != tc.want {
			t.Errorf("NTSuccess(0x%X) = %t, want %t", tc.status, got, tc.want)
		}
	}
}

func TestObjectAttributes(t *testing.T) {
	uni, err := NewUnicodeString(`\`)
	if err != nil {
		t.Fatal(err)
	}
	oa := NewObjectAttributes(uni, OBJ_CASE_INSENSITIVE)
	if oa.Length != unsafe.Sizeof(ObjectAttributes{}) {
		t.Fatalf("expected length %d, got %d", unsafe.Sizeof(ObjectAttributes{}), oa.Length)
	}
	if oa.ObjectName != uni || oa.Attributes != OBJ_CASE_INSENSITIVE || oa.RootDirectory != 0 {
		t.Fatalf("unexpected object attributes %+v", oa)
	}
}
