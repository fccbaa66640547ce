package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// GOOS values and the per-platform commands that reveal a directory
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"

	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// DefaultDirPermissions applies to every directory this app creates
const DefaultDirPermissions = 0755

// LinuxFileManagers are tried in order when xdg-open is unavailable
var LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// CreateDirectoryIfNotExists creates the directory when it is missing
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ExpandUserPath replaces a leading ~ with the user home directory.
// The ~user form is returned unchanged.
func ExpandUserPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	if path == "~" {
		return home, nil
	}

	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(home, path[2:]), nil
	}

	return path, nil
}

// ValidateOutputDir expands, absolutizes, and creates the output directory
// so spotdl can write into it. An existing path that is not a directory is
// rejected.
func ValidateOutputDir(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("output directory is empty")
	}

	expanded, err := ExpandUserPath(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output directory: %w", err)
	}

	info, err := os.Stat(abs)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(abs, DefaultDirPermissions); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	case err != nil:
		return "", fmt.Errorf("failed to inspect output directory: %w", err)
	case !info.IsDir():
		return "", fmt.Errorf("'%s' exists but is not a directory", abs)
	}

	return abs, nil
}

// GetHomeMusicDir returns the standard Music directory for the user
func GetHomeMusicDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Music"), nil
}

// OpenDirectory opens the directory in the system file manager
func OpenDirectory(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		return fmt.Errorf("directory does not exist: %v", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("'%s' is not a directory", dirPath)
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return openDirectoryLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openDirectoryLinux opens a directory with xdg-open, falling back to common
// file managers when it is unavailable
func openDirectoryLinux(dirPath string) error {
	if err := exec.Command(XDGOpenCommand, dirPath).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dirPath).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
