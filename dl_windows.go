//go:build windows

package llvmshim

import (
	"fmt"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

// openLibrary loads a DLL and returns its module handle.
func openLibrary(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("LoadLibrary: %w", err)
	}
	return uintptr(handle), nil
}

// lookupFunc resolves an exported procedure and binds it to a Go function.
func lookupFunc(handle uintptr, name string) (func(), error) {
	proc, err := windows.GetProcAddress(windows.Handle(handle), name)
	if err != nil {
		return nil, fmt.Errorf("GetProcAddress(%s): %w", name, err)
	}

	var fn func()
	purego.RegisterFunc(&fn, proc)
	return fn, nil
}
