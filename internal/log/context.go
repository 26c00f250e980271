package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

type entryContextKeyType int

const _entryContextKey entryContextKeyType = iota

// L is the default, blank logging entry. WithField and co. all return a copy
// of the original entry, so this will not leak fields between calls.
//
// Do NOT modify fields directly, as that will corrupt state for all users.
// Use `L.With*` or `G(ctx)` instead.
var L = logrus.NewEntry(logrus.StandardLogger())

// G returns the [logrus.Entry] stored in the context, if one exists.
// Otherwise, it returns a default entry that points to the current context.
func G(ctx context.Context) *logrus.Entry {
	if e := fromContext(ctx); e != nil {
		return e
	}
	return L.WithContext(ctx)
}

// S adds `fields` to the entry stored in the context (or a new one) and
// returns the updated context and entry.
func S(ctx context.Context, fields logrus.Fields) (context.Context, *logrus.Entry) {
	return WithContext(ctx, G(ctx).WithFields(fields))
}

// WithContext stores `entry` in the returned context. The entry is updated to
// reference the returned context, so that hooks see the active span.
func WithContext(ctx context.Context, entry *logrus.Entry) (context.Context, *logrus.Entry) {
	entry = entry.WithContext(ctx)
	ctx = context.WithValue(ctx, _entryContextKey, entry)
	return ctx, entry
}

// UpdateContext re-points the entry stored in `ctx`, if any, at `ctx`.
//
// Call this after deriving a context that carries a new span, otherwise the
// stored entry still references the parent context.
func UpdateContext(ctx context.Context) context.Context {
	if e := fromContext(ctx); e != nil {
		ctx, _ = WithContext(ctx, e)
	}
	return ctx
}

func fromContext(ctx context.Context) *logrus.Entry {
	e, _ := ctx.Value(_entryContextKey).(*logrus.Entry)
	return e
}
