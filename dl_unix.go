//go:build darwin || freebsd || linux || netbsd

package llvmshim

import "github.com/ebitengine/purego"

// openLibrary loads the library with all symbols resolved up front.
func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// lookupFunc binds the symbol name to a Go function.
func lookupFunc(handle uintptr, name string) (func(), error) {
	sym, err := purego.Dlsym(handle, name)
	if err != nil {
		return nil, err
	}

	var fn func()
	purego.RegisterFunc(&fn, sym)
	return fn, nil
}
