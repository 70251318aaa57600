package autoupdate

import "strings"

// PackageManager returns the package manager owning exe, or "" for a manual
// install.
func PackageManager(exe string) string {
	p := strings.ToLower(exe)
	switch {
	case strings.Contains(p, "/opt/homebrew/"), strings.Contains(p, "/usr/local/cellar/"), strings.Contains(p, "/home/linuxbrew/"):
		return "homebrew"
	case strings.Contains(p, `\scoop\apps\`):
		return "scoop"
	case strings.Contains(p, "windowsapps"):
		return "winget"
	}
	return ""
}

// UpdateCommand returns the command users should run to update exe.
func UpdateCommand(exe string) string {
	switch PackageManager(exe) {
	case "homebrew":
		return "brew upgrade hop"
	case "scoop":
		return "scoop update hop"
	case "winget":
		return "winget upgrade hop"
	default:
		return "hop update"
	}
}
