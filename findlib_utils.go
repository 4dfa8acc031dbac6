package llvmshim

import (
	"os"
	"path/filepath"
)

// parent returns the directory containing path. Trailing separators are ignored and the root is its own
// parent.
func parent(path string) string {
	return filepath.Dir(filepath.Clean(path))
}

// toolchainName returns the final element of a toolchain root such as
// ~/.rustup/toolchains/stable-x86_64-unknown-linux-gnu. Roots without a usable name are rejected.
func toolchainName(root string) (string, bool) {
	name := filepath.Base(filepath.Clean(root))
	switch name {
	case ".", "..", string(filepath.Separator):
		return "", false
	}
	if filepath.VolumeName(name) == name {
		return "", false
	}
	return name, true
}

// fileExists returns true if the given path exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
