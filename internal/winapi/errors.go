//go:build windows

package winapi

//sys RtlNtStatusToDosError(status uint32) (winerr error) = ntdll.RtlNtStatusToDosError

// NTSuccess reports whether `status` is a success or informational NTSTATUS.
// Warning and error values have the sign bit set.
func NTSuccess(status uint32) bool {
	return int32(status) >= 0
}
