//go:build darwin

package llvmshim

// libraryPathVar is the dynamic-library search path variable rustup populates on macOS.
const libraryPathVar = "DYLD_FALLBACK_LIBRARY_PATH"
