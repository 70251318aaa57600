package autoupdate

import "os"

// Probe decides whether target can be written without elevation.
type Probe func(target string) bool

// IsWritable attempts an exclusive create of path. It fails for existing files
// as well as unwritable directories, and leaves an empty file behind on
// success. The result is advisory; the executed commands have the final say.
func IsWritable(path string) bool {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
