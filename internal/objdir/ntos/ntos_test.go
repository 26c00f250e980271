//go:build windows

package ntos

import (
	"context"
	"errors"
	"testing"

	"github.com/Microsoft/ntobjls/internal/objdir"
)

func TestEnumerateRoot(t *testing.T) {
	ctx := context.Background()
	objects, err := objdir.Enumerate(ctx, New(), `\`)
	if err != nil {
		t.Fatalf("failed to enumerate root object directory: %v", err)
	}

	found := map[string]string{}
	for _, o := range objects {
		found[o.Name] = o.TypeName
		if !o.IsSymbolicLink() && o.Target != "" {
			t.Errorf("expected %q of type %q to have no target, got %q", o.Name, o.TypeName, o.Target)
		}
	}
	for _, name := range []string{"Device", "BaseNamedObjects"} {
		if typ, ok := found[name]; !ok || typ != objdir.DirectoryType {
			t.Errorf("expected root object directory to contain directory %q, got type %q", name, typ)
		}
	}
}

func TestEnumerateGlobalResolvesLinks(t *testing.T) {
	ctx := context.Background()
	objects, err := objdir.Enumerate(ctx, New(), `\Global??`)
	if err != nil {
		t.Fatalf("failed to enumerate global object directory: %v", err)
	}
	for _, o := range objects {
		if o.Name == "NUL" {
			if o.Target != `\Device\Null` {
				t.Fatalf("expected NUL to resolve to %q, got %q", `\Device\Null`, o.Target)
			}
			return
		}
	}
	t.Skip(`\Global??\NUL not present`)
}

func TestOpenMissingDirectory(t *testing.T) {
	_, err := New().OpenDirectory(context.Background(), `\ThisDirectoryDoesNotExist`)
	var status objdir.Status
	if !errors.As(err, &status) {
		t.Fatalf("expected an NTSTATUS error, got %v", err)
	}
	if status != objdir.StatusObjectNameNotFound {
		t.Fatalf("expected %v, got %v", objdir.StatusObjectNameNotFound, status)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	d, err := New().OpenDirectory(context.Background(), `\`)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("failed to close directory: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("second close returned %v", err)
	}
}

func TestResolveSymbolicLinkOnDirectory(t *testing.T) {
	if target := objdir.ResolveSymbolicLink(context.Background(), New(), `\Device`); target != "" {
		t.Fatalf("expected no target for a directory object, got %q", target)
	}
}
