//go:build !linux

package folder

func exchange(scratchRoot, destination string) error {
	return renameAside(scratchRoot, destination)
}
