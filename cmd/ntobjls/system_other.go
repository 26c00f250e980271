//go:build !windows

package main

import (
	"errors"

	"github.com/Microsoft/ntobjls/internal/objdir"
)

func newSystem() (objdir.System, error) {
	return nil, errors.New("the NT object manager is only available on Windows")
}
