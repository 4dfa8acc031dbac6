// Package llvmshim locates the LLVM codegen library bundled with a Rust toolchain and forwards the LLVM
// target initialization functions to it.
//
// The library is searched for with [Lib] or [Find], opened once per process with [Init], and its targets are
// initialized with [Library.InitializeAllTargets]:
//
//	path, err := llvmshim.Lib(ctx)
//	if err != nil {
//		return err
//	}
//	lib, err := llvmshim.Init(path)
//	if err != nil {
//		return err
//	}
//	lib.InitializeAllTargets()
package llvmshim

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"
)

var (
	// ErrAlreadyInitialized is returned when the library is opened more than once.
	ErrAlreadyInitialized = errors.New("already initialized")
	// ErrUnsupportedPlatform is returned when the platform cannot load dynamic libraries.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// logger receives diagnostics about skipped strategies and symbols. It discards by default.
var logger = log.New(io.Discard, "", 0)

// SetLogger sets the logger used for diagnostics. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// Library is the opened LLVM codegen library. It is never closed.
type Library struct {
	path   string
	handle uintptr

	initOnce    sync.Once
	initialized []Backend
}

var (
	// opening guards the process-wide library against concurrent or repeated opens.
	opening atomic.Bool
	shared  atomic.Pointer[Library]
)

// Init opens the library at libraryPath and makes it the process-wide library. Only one library can be
// opened per process; subsequent calls return ErrAlreadyInitialized. If opening fails another path may be
// tried.
func Init(libraryPath string) (*Library, error) {
	if !opening.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInitialized
	}

	handle, err := openLibrary(libraryPath)
	if err != nil {
		opening.Store(false)
		return nil, fmt.Errorf("dlopen: %w", err)
	}
	lib := &Library{path: libraryPath, handle: handle}
	shared.Store(lib)
	logger.Printf("opened %s", libraryPath)

	return lib, nil
}

// Shared returns the library opened by Init or nil if none has been opened.
func Shared() *Library {
	return shared.Load()
}

// Path returns the path the library was opened from.
func (l *Library) Path() string {
	return l.path
}

// Lookup resolves a function taking no arguments and returning nothing.
func (l *Library) Lookup(name string) (func(), bool) {
	fn, err := lookupFunc(l.handle, name)
	if err != nil {
		return nil, false
	}
	return fn, true
}

// InitializeAllTargets initializes every backend the library exports. The initialization functions run
// once per library; later calls return the backends initialized by the first.
func (l *Library) InitializeAllTargets() []Backend {
	l.initOnce.Do(func() {
		l.initialized = InitializeAllTargets(l)
	})
	return l.initialized
}
