package folder

// SetRemoveAll replaces the function used to delete scratch areas and previous trees.
func (i *Installer) SetRemoveAll(removeAll func(path string) error) {
	i.removeAll = removeAll
}
