//go:build !(darwin || freebsd || linux || netbsd || windows)

package llvmshim

// openLibrary returns ErrUnsupportedPlatform on systems without a dynamic loader binding.
func openLibrary(string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func lookupFunc(uintptr, string) (func(), error) {
	return nil, ErrUnsupportedPlatform
}
