package objdir

import "context"

//go:generate go tool go.uber.org/mock/mockgen -source=system.go -package=mock -destination=mock/objdir_mock.go

// System is the interface between the enumerator and the operating system's
// object manager. The production implementation lives in package ntos; tests
// use package mockntos or the gomock mocks in package mock.
type System interface {
	// OpenDirectory opens the object directory at `path` for query access,
	// matching the name case-insensitively.
	OpenDirectory(ctx context.Context, path string) (Directory, error)
	// OpenSymbolicLink opens the symbolic link object at `path` for query
	// access, matching the name case-insensitively.
	OpenSymbolicLink(ctx context.Context, path string) (SymbolicLink, error)
}

// Directory is an open object directory handle.
type Directory interface {
	// Query fills `buf` with the next batch of directory entries. If `restart`
	// is set the scan begins again at the first entry, otherwise it resumes
	// at `cursor`. On success `cursor` is advanced past the returned entries.
	//
	// The returned records alias `buf` and must be decoded before `buf` is
	// passed to another call.
	Query(buf []byte, restart bool, cursor *uint32) ([]Record, error)
	Close() error
}

// SymbolicLink is an open symbolic link object handle.
type SymbolicLink interface {
	// Target writes the link's target into `buf` and returns the number of
	// bytes written.
	Target(buf []uint16) (uint32, error)
	Close() error
}

// Record is a single undecoded object directory entry. Name and TypeName
// hold little-endian UTF-16 text, sized by the byte lengths the object
// manager reported.
type Record struct {
	Name     []byte
	TypeName []byte
}
