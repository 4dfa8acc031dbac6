//go:build windows

package llvmshim

// libraryPathVar is the variable Windows consults when loading DLLs.
const libraryPathVar = "PATH"
