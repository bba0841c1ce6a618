/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

//go:build linux

// Package diskusage reports the capacity of the filesystem holding a path.
package diskusage

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Info is the capacity of a mounted filesystem, in bytes. Used counts the
// space unavailable to everyone including root; Available is the space left
// for unprivileged users, so Used+Available may be less than Size on
// filesystems with reserved blocks.
type Info struct {
	Size      uint64
	Used      uint64
	Free      uint64
	Available uint64
}

// Query returns the capacity of the filesystem holding path.
func Query(path string) (*Info, error) {
	if path == "" {
		return nil, errors.New("path is required")
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return nil, fmt.Errorf("failed to stat filesystem %q: %w", path, err)
	}

	frsize := uint64(stat.Frsize)
	size := stat.Blocks * frsize
	free := stat.Bfree * frsize

	return &Info{
		Size:      size,
		Used:      size - free,
		Free:      free,
		Available: stat.Bavail * frsize,
	}, nil
}
