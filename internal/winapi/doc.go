// Package winapi contains the ntdll bindings used to walk the NT object
// manager namespace. It can be thought of as an extension to
// golang.org/x/sys/windows.
package winapi

//go:generate go tool github.com/Microsoft/go-winio/tools/mkwinsyscall -output zsyscall_windows.go ./*.go
