package objdir

import (
	"context"
	"strings"

	"github.com/Microsoft/ntobjls/internal/log"
	"github.com/Microsoft/ntobjls/internal/logfields"
)

// LinkTargetBufferSize is the number of UTF-16 code units (4 KiB) available
// for a symbolic link's target.
const LinkTargetBufferSize = 2048

const pathSeparator = `\`

// JoinPath returns the object manager path of entry `name` in directory `dir`.
func JoinPath(dir, name string) string {
	if strings.HasSuffix(dir, pathSeparator) {
		return dir + name
	}
	return dir + pathSeparator + name
}

// ResolveSymbolicLink returns the target of the symbolic link object at `path`,
// or the empty string if the link cannot be opened or queried.
func ResolveSymbolicLink(ctx context.Context, sys System, path string) string {
	entry := log.G(ctx).WithField(logfields.Path, path)

	l, err := sys.OpenSymbolicLink(ctx, path)
	if err != nil {
		entry.WithError(err).Debug("failed to open symbolic link")
		return ""
	}

	buf := make([]uint16, LinkTargetBufferSize)
	n, err := l.Target(buf)
	if cerr := l.Close(); cerr != nil {
		entry.WithError(cerr).Warning("failed to close symbolic link")
	}
	if err != nil {
		entry.WithError(err).Debug("failed to query symbolic link target")
		return ""
	}

	chars := min(int(n/2), len(buf))
	target := DecodeUTF16(buf[:chars])
	entry.WithField(logfields.Target, target).Debug("resolved symbolic link")
	return target
}
