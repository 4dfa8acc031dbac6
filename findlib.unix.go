//go:build !(darwin || windows)

package llvmshim

// libraryPathVar is the dynamic-library search path variable on Linux and other Unix systems.
const libraryPathVar = "LD_LIBRARY_PATH"
