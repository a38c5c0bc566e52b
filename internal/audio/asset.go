package audio

import "os"

// Asset is a transient audio file on disk
type Asset struct {
	Path string
	Size int64
}

// Exists reports whether the file is still on disk
func (a *Asset) Exists() bool {
	if a == nil || a.Path == "" {
		return false
	}
	_, err := os.Stat(a.Path)
	return err == nil
}

// Remove deletes the file from disk
func (a *Asset) Remove() error {
	return os.Remove(a.Path)
}
