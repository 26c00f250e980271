//go:build windows

package winapi

import "unsafe"

//sys NtOpenDirectoryObject(handle *uintptr, accessMask uint32, oa *ObjectAttributes) (status uint32) = ntdll.NtOpenDirectoryObject
//sys NtQueryDirectoryObject(handle uintptr, buffer *byte, length uint32, singleEntry bool, restartScan bool, context *uint32, returnLength *uint32)(status uint32) = ntdll.NtQueryDirectoryObject
//sys NtOpenSymbolicLinkObject(handle *uintptr, accessMask uint32, oa *ObjectAttributes) (status uint32) = ntdll.NtOpenSymbolicLinkObject
//sys NtQuerySymbolicLinkObject(handle uintptr, target *UnicodeString, returnLength *uint32) (status uint32) = ntdll.NtQuerySymbolicLinkObject

// Object directory access rights.
const (
	DIRECTORY_QUERY = 0x0001

	SYMBOLIC_LINK_QUERY = 0x0001
)

// Object attribute flags.
const (
	OBJ_CASE_INSENSITIVE = 0x00000040
)

// C declaration:
//
//	typedef struct _OBJECT_ATTRIBUTES {
//	    ULONG           Length;
//	    HANDLE          RootDirectory;
//	    PUNICODE_STRING ObjectName;
//	    ULONG           Attributes;
//	    PVOID           SecurityDescriptor;
//	    PVOID           SecurityQualityOfService;
//	} OBJECT_ATTRIBUTES;
type ObjectAttributes struct {
	Length             uintptr
	RootDirectory      uintptr
	ObjectName         *UnicodeString
	Attributes         uintptr
	SecurityDescriptor uintptr
	SecurityQoS        uintptr
}

// NewObjectAttributes is the equivalent of InitializeObjectAttributes with no
// root directory and no security descriptor.
func NewObjectAttributes(name *UnicodeString, attributes uintptr) *ObjectAttributes {
	oa := &ObjectAttributes{
		ObjectName: name,
		Attributes: attributes,
	}
	oa.Length = unsafe.Sizeof(*oa)
	return oa
}

// C declaration:
//
//	typedef struct _OBJECT_DIRECTORY_INFORMATION {
//	    UNICODE_STRING Name;
//	    UNICODE_STRING TypeName;
//	} OBJECT_DIRECTORY_INFORMATION;
//
// NtQueryDirectoryObject packs these records at the start of the caller's
// buffer; the strings they point to follow the records in the same buffer.
type ObjectDirectoryInformation struct {
	Name     UnicodeString
	TypeName UnicodeString
}

// ObjectDirectoryInformationSize is the size, in bytes, of a single
// ObjectDirectoryInformation record.
const ObjectDirectoryInformationSize = unsafe.Sizeof(ObjectDirectoryInformation{})
