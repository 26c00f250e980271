//go:build windows

// Package ntos implements [objdir.System] on top of the ntdll object manager
// calls.
package ntos

import (
	"context"
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"

	"github.com/Microsoft/ntobjls/internal/log"
	"github.com/Microsoft/ntobjls/internal/logfields"
	"github.com/Microsoft/ntobjls/internal/objdir"
	"github.com/Microsoft/ntobjls/internal/winapi"
)

// System is the object manager of the running system.
type System struct{}

var _ objdir.System = System{}

// New returns a [System].
func New() System {
	return System{}
}

func (System) OpenDirectory(ctx context.Context, path string) (objdir.Directory, error) {
	h, err := open(ctx, path, winapi.DIRECTORY_QUERY, winapi.NtOpenDirectoryObject)
	if err != nil {
		return nil, err
	}
	log.G(ctx).WithField(logfields.Path, path).Trace("opened directory object handle")
	return &directory{handle: handle{h: h}}, nil
}

func (System) OpenSymbolicLink(ctx context.Context, path string) (objdir.SymbolicLink, error) {
	h, err := open(ctx, path, winapi.SYMBOLIC_LINK_QUERY, winapi.NtOpenSymbolicLinkObject)
	if err != nil {
		return nil, err
	}
	log.G(ctx).WithField(logfields.Path, path).Trace("opened symbolic link object handle")
	return &symbolicLink{handle: handle{h: h}}, nil
}

type openFunc func(h *uintptr, accessMask uint32, oa *winapi.ObjectAttributes) (status uint32)

func open(ctx context.Context, path string, access uint32, fn openFunc) (uintptr, error) {
	name, err := winapi.NewUnicodeString(path)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid object name %q", path)
	}
	oa := winapi.NewObjectAttributes(name, winapi.OBJ_CASE_INSENSITIVE)

	var h uintptr
	if status := fn(&h, access, oa); !winapi.NTSuccess(status) {
		log.G(ctx).WithFields(logrus.Fields{
			logfields.Path:   path,
			logfields.Status: objdir.Status(status).Error(),
			logrus.ErrorKey:  winapi.RtlNtStatusToDosError(status),
		}).Debug("failed to open object handle")
		return 0, objdir.Status(status)
	}
	return h, nil
}

// handle closes the underlying object handle at most once.
type handle struct {
	h    uintptr
	once sync.Once
	err  error
}

func (h *handle) Close() error {
	h.once.Do(func() {
		h.err = windows.CloseHandle(windows.Handle(h.h))
	})
	return h.err
}

type directory struct {
	handle
}

var _ objdir.Directory = &directory{}

func (d *directory) Query(buf []byte, restart bool, cursor *uint32) ([]objdir.Record, error) {
	if len(buf) == 0 {
		return nil, objdir.StatusBufferTooSmall
	}

	start := *cursor
	if restart {
		start = 0
	}
	var returnLength uint32
	status := winapi.NtQueryDirectoryObject(
		d.h,
		&buf[0],
		uint32(len(buf)),
		false,
		restart,
		cursor,
		&returnLength,
	)
	if !winapi.NTSuccess(status) {
		return nil, objdir.Status(status)
	}

	n := int(*cursor - start)
	records := make([]objdir.Record, 0, n)
	for i := range n {
		off := uintptr(i) * winapi.ObjectDirectoryInformationSize
		if off+winapi.ObjectDirectoryInformationSize > uintptr(len(buf)) {
			break
		}
		// the strings point back into buf
		info := (*winapi.ObjectDirectoryInformation)(unsafe.Pointer(&buf[off]))
		records = append(records, objdir.Record{
			Name:     info.Name.Bytes(),
			TypeName: info.TypeName.Bytes(),
		})
	}
	return records, nil
}

type symbolicLink struct {
	handle
}

var _ objdir.SymbolicLink = &symbolicLink{}

func (l *symbolicLink) Target(buf []uint16) (uint32, error) {
	if len(buf) == 0 {
		return 0, objdir.StatusBufferTooSmall
	}
	target := winapi.NewEmptyUnicodeString(buf)
	var returnLength uint32
	if status := winapi.NtQuerySymbolicLinkObject(l.h, &target, &returnLength); !winapi.NTSuccess(status) {
		return 0, objdir.Status(status)
	}
	// returnLength may count a terminating null; Length does not
	return uint32(target.Length), nil
}
