// Package objdir enumerates Windows NT object manager directories and
// resolves the symbolic links found in them.
//
// All calls into the operating system go through a [System], so the
// enumeration logic can be exercised without a live object manager.
package objdir

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Microsoft/ntobjls/internal/log"
	"github.com/Microsoft/ntobjls/internal/logfields"
	"github.com/Microsoft/ntobjls/internal/otelutil"
)

const (
	// QueryBufferSize is the size of the buffer reused for every directory query.
	QueryBufferSize = 1 << 16

	// SymbolicLinkType is the object type name of symbolic links.
	SymbolicLinkType = "SymbolicLink"
	// DirectoryType is the object type name of object directories.
	DirectoryType = "Directory"
)

// ObjectInfo describes a single object directory entry.
type ObjectInfo struct {
	Name     string `json:"name"`
	TypeName string `json:"type"`
	// Target is the resolved target of a symbolic link. It is empty for other
	// object types, and for links that could not be resolved.
	Target string `json:"target,omitempty"`
}

// IsSymbolicLink reports whether the entry is a symbolic link object.
func (o ObjectInfo) IsSymbolicLink() bool {
	return o.TypeName == SymbolicLinkType
}

type options struct {
	strict       bool
	resolveLinks bool
	bufferSize   int
}

// Option configures [Enumerate].
type Option func(*options)

// WithStrict controls how a failed directory query is treated.
//
// By default any failed query ends the enumeration and the entries read so
// far are returned. In strict mode only STATUS_NO_MORE_ENTRIES ends the
// enumeration normally; any other failure is returned as an error.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithResolveLinks controls whether symbolic link targets are resolved.
// Resolution is enabled by default.
func WithResolveLinks(resolve bool) Option {
	return func(o *options) {
		o.resolveLinks = resolve
	}
}

// WithBufferSize overrides [QueryBufferSize]. Values less than one are ignored.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// Enumerate lists the entries of the object directory at `dir`, in the order
// the object manager returns them.
//
// Failing to open `dir` is the only error returned by default; the result is
// nil in that case. Symbolic links whose target cannot be resolved are
// returned with an empty Target.
func Enumerate(ctx context.Context, sys System, dir string, opts ...Option) (_ []ObjectInfo, err error) {
	o := options{
		resolveLinks: true,
		bufferSize:   QueryBufferSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := otelutil.StartSpan(ctx, "objdir::Enumerate", trace.WithAttributes(
		attribute.String(logfields.Path, dir),
		attribute.Bool("strict", o.strict)))
	defer span.End()
	defer func() { otelutil.SetSpanStatus(span, err) }()

	entry := log.G(ctx).WithField(logfields.Directory, dir)

	d, err := sys.OpenDirectory(ctx, dir)
	if err != nil {
		entry.WithError(err).Debug("failed to open object directory")
		return nil, err
	}
	entry.Debug("opened object directory")
	defer func() {
		if cerr := d.Close(); cerr != nil {
			entry.WithError(cerr).Warning("failed to close object directory")
		}
	}()

	var (
		buf     = make([]byte, o.bufferSize)
		cursor  uint32
		objects = []ObjectInfo{}
	)
	for restart := true; ; restart = false {
		prev := cursor
		records, qerr := d.Query(buf, restart, &cursor)
		if qerr != nil {
			if errors.Is(qerr, StatusNoMoreEntries) {
				entry.WithField(logfields.Cursor, cursor).Debug("reached end of object directory")
				break
			}
			if o.strict {
				return nil, errors.Wrapf(qerr, "failed to query object directory %q", dir)
			}
			entry.WithError(qerr).WithField(logfields.Count, len(objects)).
				Warning("object directory query failed, returning the entries read so far")
			break
		}
		entry.WithFields(logrus.Fields{
			logfields.Count:   len(records),
			logfields.Cursor:  cursor,
			logfields.Restart: restart,
		}).Debug("queried object directory")

		// decode now: the next query overwrites buf
		for _, r := range records {
			info := ObjectInfo{
				Name:     DecodeUTF16Bytes(r.Name),
				TypeName: DecodeUTF16Bytes(r.TypeName),
			}
			if info.IsSymbolicLink() && o.resolveLinks {
				info.Target = ResolveSymbolicLink(ctx, sys, JoinPath(dir, info.Name))
			}
			entry.WithField(logfields.Object, info).Trace("decoded object directory entry")
			objects = append(objects, info)
		}

		if cursor == prev {
			entry.WithField(logfields.Cursor, cursor).Debug("object directory query made no progress")
			break
		}
	}

	span.SetAttributes(attribute.Int(logfields.Count, len(objects)))
	return objects, nil
}
