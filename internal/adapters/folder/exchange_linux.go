//go:build linux

package folder

import (
	"errors"

	"golang.org/x/sys/unix"
)

// exchange atomically swaps scratchRoot and destination with renameat2(RENAME_EXCHANGE).
// File systems without exchange support fall back to renameAside.
func exchange(scratchRoot, destination string) error {
	err := unix.Renameat2(unix.AT_FDCWD, scratchRoot, unix.AT_FDCWD, destination, unix.RENAME_EXCHANGE)
	if errors.Is(err, unix.ENOSYS) || errors.Is(err, unix.EINVAL) || errors.Is(err, unix.EOPNOTSUPP) {
		return renameAside(scratchRoot, destination)
	}
	return err
}
