// Package fs adapts the passthru dispatcher to bazil.org/fuse.
//
// This file contains the translation from dispatcher errors to the errno
// values FUSE replies with.
package fs

import (
	"errors"
	"syscall"

	"passthrufs/internal/logging"
	"passthrufs/internal/passthru"
)

var (
	errLogger = logging.GetLogger().WithPrefix("error")
)

// ToFuseError converts a dispatcher error to the errno FUSE expects.
// NotFound is always ENOENT. IOError keeps the host errno when there is
// one, EIO otherwise.
func ToFuseError(err error) error {
	if err == nil {
		return nil
	}

	if passthru.IsNotFound(err) {
		errLogger.Trace("Converting NotFound to ENOENT: %v", err)
		return syscall.ENOENT
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		errLogger.Trace("Converting host error to %v: %v", errno, err)
		return errno
	}

	if !errors.Is(err, passthru.ErrIO) {
		errLogger.Debug("Unknown error type, returning EIO: %v", err)
	}
	return syscall.EIO
}
