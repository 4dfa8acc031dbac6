package llvmshim

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrLibraryNotFound is returned when the LLVM codegen library cannot be found.
	ErrLibraryNotFound = errors.New("library not found")
	// ErrInconsistentEnvironment is returned when RUSTUP_HOME is set without RUSTUP_TOOLCHAIN.
	ErrInconsistentEnvironment = errors.New("inconsistent environment")
)

// NotFoundError is returned by Find when no candidate directory holds the library. It lists every probed
// candidate in the order they were generated.
type NotFoundError struct {
	Candidates []Candidate
}

func (e *NotFoundError) Error() string {
	if len(e.Candidates) == 0 {
		return "unable to find possible LLVM shared lib locations"
	}

	var b strings.Builder
	b.WriteString("unable to find LLVM shared lib in possible locations:")
	for _, c := range e.Candidates {
		b.WriteString("\n- ")
		b.WriteString(c.Dir)
	}
	return b.String()
}

// Is reports ErrLibraryNotFound as the target so callers can match with errors.Is.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrLibraryNotFound
}

// Dirs returns the probed directories in generation order.
func (e *NotFoundError) Dirs() []string {
	dirs := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		dirs[i] = c.Dir
	}
	return dirs
}

// Lib attempts to find the LLVM codegen library bundled with the active Rust toolchain and returns the path
// if found. If the LIBLLVM_PATH environment variable is set, the value of that environment variable is
// returned without searching.
func Lib(ctx context.Context) (string, error) {
	if path := os.Getenv("LIBLLVM_PATH"); path != "" {
		return path, nil
	}

	path, err := Find(ctx, OSEnvironment())
	if err != nil {
		return "", fmt.Errorf("find: %w", err)
	}
	return path, nil
}
