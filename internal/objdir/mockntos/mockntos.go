// Package mockntos defines an in-memory object manager namespace that
// implements [objdir.System].
//
// Directory queries lay entries out in the caller's buffer the way
// NtQueryDirectoryObject does: fixed size records at the start, followed by
// the strings they reference. The buffer is scribbled over before every query,
// so records that outlive the next query read garbage.
package mockntos

import (
	"context"
	"encoding/binary"
	"strings"

	"github.com/samber/lo"

	"github.com/Microsoft/ntobjls/internal/objdir"
)

const (
	// recordSize is the size of an OBJECT_DIRECTORY_INFORMATION record on
	// 64-bit Windows: two 16 byte UNICODE_STRINGs.
	recordSize = 32

	// StatusInvalidHandle is returned when a closed handle is used.
	StatusInvalidHandle = objdir.Status(0xC0000008)
)

// QueryCall records the arguments of a single directory query.
type QueryCall struct {
	Path       string
	Restart    bool
	Cursor     uint32
	BufferSize int
}

type entry struct {
	name     []uint16
	typeName []uint16
}

type directoryState struct {
	path    string
	entries []entry
	calls   int
	// failures to return, keyed by query call number
	queryErrs map[int]error
}

// System is an in-memory object namespace. The zero value is not usable; call
// [New].
type System struct {
	dirs  map[string]*directoryState
	links map[string][]uint16
	// object type names by path, for type mismatch checks
	types map[string]string

	openErrs   map[string]error
	targetErrs map[string]error

	pageSize int
	open     int
	queries  []QueryCall
	buffers  []*byte
}

var _ objdir.System = &System{}

// New returns a namespace containing only the empty root directory `\`.
func New() *System {
	s := &System{
		dirs:       make(map[string]*directoryState),
		links:      make(map[string][]uint16),
		types:      make(map[string]string),
		openErrs:   make(map[string]error),
		targetErrs: make(map[string]error),
	}
	s.AddDirectory(`\`)
	return s
}

// key folds `path` for case-insensitive lookups.
func key(path string) string {
	return strings.ToUpper(path)
}

// SetPageSize limits the number of entries a single query returns.
// Zero, the default, only limits by buffer size.
func (s *System) SetPageSize(n int) {
	s.pageSize = n
}

// AddDirectory creates an empty object directory at `path`, if it does not
// already exist. Parent directories are not created.
func (s *System) AddDirectory(path string) {
	k := key(path)
	if _, ok := s.dirs[k]; ok {
		return
	}
	s.dirs[k] = &directoryState{path: path, queryErrs: make(map[int]error)}
	s.types[k] = objdir.DirectoryType
}

// AddObject adds an entry to directory `dir`, creating `dir` if needed.
// Entries of type "Directory" are also created as (empty) directories.
func (s *System) AddObject(dir, name, typeName string) {
	s.AddRawObject(dir, objdir.EncodeUTF16(name), objdir.EncodeUTF16(typeName))
	if typeName == objdir.DirectoryType {
		s.AddDirectory(objdir.JoinPath(dir, name))
	}
}

// AddRawObject adds an entry whose name and type are given as UTF-16 code
// units, which need not be valid UTF-16.
func (s *System) AddRawObject(dir string, name, typeName []uint16) {
	s.AddDirectory(dir)
	d := s.dirs[key(dir)]
	d.entries = append(d.entries, entry{name: name, typeName: typeName})
	s.types[key(objdir.JoinPath(dir, objdir.DecodeUTF16(name)))] = objdir.DecodeUTF16(typeName)
}

// AddSymbolicLink adds a symbolic link named `name` to `dir` that resolves to
// `target`.
func (s *System) AddSymbolicLink(dir, name, target string) {
	s.AddObject(dir, name, objdir.SymbolicLinkType)
	s.links[key(objdir.JoinPath(dir, name))] = objdir.EncodeUTF16(target)
}

// RemoveSymbolicLinkTarget deletes the link object behind an existing entry,
// leaving the directory entry in place.
func (s *System) RemoveSymbolicLinkTarget(path string) {
	delete(s.links, key(path))
	delete(s.types, key(path))
}

// FailOpen makes every open of `path` fail with `err`.
func (s *System) FailOpen(path string, err error) {
	s.openErrs[key(path)] = err
}

// FailQuery makes the `call`-th (zero based) query of directory `dir` fail
// with `err`. The cursor is left unchanged.
func (s *System) FailQuery(dir string, call int, err error) {
	s.AddDirectory(dir)
	s.dirs[key(dir)].queryErrs[call] = err
}

// FailTarget makes querying the target of the link at `path` fail with `err`.
func (s *System) FailTarget(path string, err error) {
	s.targetErrs[key(path)] = err
}

// OpenHandles returns the number of handles opened and not yet closed.
func (s *System) OpenHandles() int {
	return s.open
}

// Queries returns every directory query made, in order.
func (s *System) Queries() []QueryCall {
	return s.queries
}

// QueryBuffers returns the number of distinct buffers passed to directory
// queries.
func (s *System) QueryBuffers() int {
	return len(lo.Uniq(s.buffers))
}

func (s *System) OpenDirectory(_ context.Context, path string) (objdir.Directory, error) {
	k := key(path)
	if err, ok := s.openErrs[k]; ok {
		return nil, err
	}
	d, ok := s.dirs[k]
	if !ok {
		if _, exists := s.types[k]; exists {
			return nil, objdir.StatusObjectTypeMismatch
		}
		return nil, objdir.StatusObjectNameNotFound
	}
	d.calls = 0
	s.open++
	return &directory{handle: handle{sys: s}, state: d}, nil
}

func (s *System) OpenSymbolicLink(_ context.Context, path string) (objdir.SymbolicLink, error) {
	k := key(path)
	if err, ok := s.openErrs[k]; ok {
		return nil, err
	}
	target, ok := s.links[k]
	if !ok {
		if _, exists := s.types[k]; exists {
			return nil, objdir.StatusObjectTypeMismatch
		}
		return nil, objdir.StatusObjectNameNotFound
	}
	s.open++
	return &symbolicLink{handle: handle{sys: s}, path: path, target: target}, nil
}

type handle struct {
	sys    *System
	closed bool
}

func (h *handle) Close() error {
	if h.closed {
		return StatusInvalidHandle
	}
	h.closed = true
	h.sys.open--
	return nil
}

type directory struct {
	handle
	state *directoryState
}

func (d *directory) Query(buf []byte, restart bool, cursor *uint32) ([]objdir.Record, error) {
	if d.closed {
		return nil, StatusInvalidHandle
	}
	s := d.sys
	s.queries = append(s.queries, QueryCall{
		Path:       d.state.path,
		Restart:    restart,
		Cursor:     *cursor,
		BufferSize: len(buf),
	})
	if len(buf) > 0 {
		s.buffers = append(s.buffers, &buf[0])
	}

	call := d.state.calls
	d.state.calls++
	if err, ok := d.state.queryErrs[call]; ok {
		return nil, err
	}

	pos := int(*cursor)
	if restart {
		pos = 0
	}
	entries := d.state.entries
	if pos >= len(entries) {
		return nil, objdir.StatusNoMoreEntries
	}

	n, used := 0, 0
	for _, e := range entries[pos:] {
		if s.pageSize > 0 && n == s.pageSize {
			break
		}
		need := recordSize + stringSize(e.name) + stringSize(e.typeName)
		if used+need > len(buf) {
			break
		}
		used += need
		n++
	}
	if n == 0 {
		return nil, objdir.StatusBufferTooSmall
	}

	for i := range buf {
		buf[i] = 0xFF
	}
	records := make([]objdir.Record, n)
	off := n * recordSize
	for i, e := range entries[pos : pos+n] {
		hdr := buf[i*recordSize : (i+1)*recordSize]
		records[i].Name, off = putString(buf, off, hdr[0:], e.name)
		records[i].TypeName, off = putString(buf, off, hdr[16:], e.typeName)
	}

	*cursor = uint32(pos + n)
	return records, nil
}

// stringSize is the number of bytes `s` and its terminator take in a buffer.
func stringSize(s []uint16) int {
	return 2 * (len(s) + 1)
}

// putString writes `s` and a null terminator at `buf[off:]`, fills in the
// length fields of the UNICODE_STRING at `hdr`, and returns the written
// characters and the offset following them.
func putString(buf []byte, off int, hdr []byte, s []uint16) ([]byte, int) {
	binary.LittleEndian.PutUint16(hdr[0:], uint16(2*len(s)))
	binary.LittleEndian.PutUint16(hdr[2:], uint16(stringSize(s)))
	start := off
	for _, c := range s {
		binary.LittleEndian.PutUint16(buf[off:], c)
		off += 2
	}
	binary.LittleEndian.PutUint16(buf[off:], 0)
	return buf[start:off], off + 2
}

type symbolicLink struct {
	handle
	path   string
	target []uint16
}

func (l *symbolicLink) Target(buf []uint16) (uint32, error) {
	if l.closed {
		return 0, StatusInvalidHandle
	}
	if err, ok := l.sys.targetErrs[key(l.path)]; ok {
		return 0, err
	}
	if len(l.target) > len(buf) {
		return 0, objdir.StatusBufferTooSmall
	}
	n := copy(buf, l.target)
	for i := n; i < len(buf); i++ {
		buf[i] = 'X'
	}
	return uint32(2 * n), nil
}
