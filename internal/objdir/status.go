package objdir

import "fmt"

// Status is an NTSTATUS value returned by the object manager.
//
// A Status is only returned as an error when it denotes a failure, ie, when
// it is negative as a signed 32-bit integer.
type Status uint32

const (
	StatusSuccess            Status = 0x0
	StatusMoreEntries        Status = 0x105
	StatusNoMoreEntries      Status = 0x8000001A
	StatusAccessDenied       Status = 0xC0000022
	StatusBufferTooSmall     Status = 0xC0000023
	StatusObjectTypeMismatch Status = 0xC0000024
	StatusObjectNameInvalid  Status = 0xC0000033
	StatusObjectNameNotFound Status = 0xC0000034
	StatusObjectPathNotFound Status = 0xC000003A

	StatusInsufficientResources Status = 0xC000009A
)

var statusNames = map[Status]string{
	StatusSuccess:            "STATUS_SUCCESS",
	StatusMoreEntries:        "STATUS_MORE_ENTRIES",
	StatusNoMoreEntries:      "STATUS_NO_MORE_ENTRIES",
	StatusAccessDenied:       "STATUS_ACCESS_DENIED",
	StatusBufferTooSmall:     "STATUS_BUFFER_TOO_SMALL",
	StatusObjectTypeMismatch: "STATUS_OBJECT_TYPE_MISMATCH",
	StatusObjectNameInvalid:  "STATUS_OBJECT_NAME_INVALID",
	StatusObjectNameNotFound: "STATUS_OBJECT_NAME_NOT_FOUND",
	StatusObjectPathNotFound: "STATUS_OBJECT_PATH_NOT_FOUND",

	StatusInsufficientResources: "STATUS_INSUFFICIENT_RESOURCES",
}

// Code returns the raw NTSTATUS value.
func (s Status) Code() uint32 {
	return uint32(s)
}

// Failed reports whether `s` is a warning or error status.
func (s Status) Failed() bool {
	return int32(s) < 0
}

func (s Status) Error() string {
	if n, ok := statusNames[s]; ok {
		return fmt.Sprintf("%s (0x%08X)", n, uint32(s))
	}
	return fmt.Sprintf("NTSTATUS 0x%08X", uint32(s))
}
