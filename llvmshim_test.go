package llvmshim_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/adamkeys/llvmshim"
)

// systemLibrary is a library present on every supported system. It exports none of the target functions.
func systemLibrary(t *testing.T) string {
	switch runtime.GOOS {
	case "linux":
		return "libc.so.6"
	case "darwin":
		return "/usr/lib/libSystem.B.dylib"
	case "windows":
		return "kernel32.dll"
	}
	t.Skipf("no system library on %s", runtime.GOOS)
	return ""
}

// The library is process-wide, so opening it is covered by a single test.
func TestInit(t *testing.T) {
	if _, err := llvmshim.Init("/nonexistent/librustc_codegen_llvm-llvm.so"); err == nil || errors.Is(err, llvmshim.ErrAlreadyInitialized) {
		t.Fatalf("expected open failure; got: %v", err)
	}
	if llvmshim.Shared() != nil {
		t.Fatal("expected no shared library after a failed open")
	}

	path := systemLibrary(t)
	lib, err := llvmshim.Init(path)
	if err != nil {
		t.Skipf("open %s: %v", path, err)
	}
	if llvmshim.Shared() != lib {
		t.Error("expected Shared to return the opened library")
	}
	if lib.Path() != path {
		t.Errorf("unexpected path: %q; got: %q", path, lib.Path())
	}

	if _, err := llvmshim.Init(path); !errors.Is(err, llvmshim.ErrAlreadyInitialized) {
		t.Errorf("expected ErrAlreadyInitialized; got: %v", err)
	}

	if _, ok := lib.Lookup("LLVMInitializeX86Target"); ok {
		t.Error("unexpected LLVM symbol in system library")
	}
	if initialized := lib.InitializeAllTargets(); len(initialized) != 0 {
		t.Errorf("expected no targets; got %v", initialized)
	}
	if initialized := lib.InitializeAllTargets(); len(initialized) != 0 {
		t.Errorf("expected no targets on repeat; got %v", initialized)
	}
}
