//go:build windows

package main

import (
	"github.com/Microsoft/ntobjls/internal/objdir"
	"github.com/Microsoft/ntobjls/internal/objdir/ntos"
)

func newSystem() (objdir.System, error) {
	return ntos.New(), nil
}
