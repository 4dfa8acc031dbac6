package llvmshim

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownArchitecture is returned when the compiler's target architecture has no matching backend.
var ErrUnknownArchitecture = errors.New("unknown architecture")

// Backend identifies an LLVM code generation target.
type Backend string

// Symbol returns the name of the backend's target initialization function.
func (b Backend) Symbol() string {
	return "LLVMInitialize" + string(b) + "Target"
}

// Backends are the targets the codegen library may have been built with, in initialization order.
var Backends = []Backend{
	"AArch64",
	"AMDGPU",
	"ARM",
	"BPF",
	"Hexagon",
	"Lanai",
	"Mips",
	"MSP430",
	"NVPTX",
	"PowerPC",
	"Sparc",
	"SystemZ",
	"X86",
	"XCore",
}

// Symbols resolves functions taking no arguments and returning nothing from a loaded library. A missing
// symbol is reported with false, not an error.
type Symbols interface {
	Lookup(name string) (func(), bool)
}

// InitializeAllTargets calls the initialization function of every backend the library exports and returns
// the backends that were initialized. Backends the library was built without are skipped.
func InitializeAllTargets(lib Symbols) []Backend {
	var initialized []Backend
	for _, b := range Backends {
		if InitializeTarget(lib, b) {
			initialized = append(initialized, b)
		}
	}
	return initialized
}

// InitializeTarget calls the initialization function of a single backend. It reports false when the library
// does not export it.
func InitializeTarget(lib Symbols, b Backend) bool {
	fn, ok := lib.Lookup(b.Symbol())
	if !ok {
		logger.Printf("skip %s: symbol not exported", b.Symbol())
		return false
	}
	fn()
	logger.Printf("initialized %s", b)
	return true
}

// NativeBackend returns the backend for the architecture the active compiler targets by default. It runs
// `rustc --print cfg` and maps target_arch to a backend. Unrecognized architectures yield
// ErrUnknownArchitecture.
func NativeBackend(ctx context.Context, env Environment) (Backend, error) {
	compiler, err := compilerPath(ctx, env)
	if err != nil {
		compiler = rustc
	}
	cfg, err := env.run(ctx, compiler, "--print", "cfg")
	if err != nil {
		return "", fmt.Errorf("print cfg: %w", err)
	}
	arch, ok := targetArchFromCfg(cfg)
	if !ok {
		return "", fmt.Errorf("%w: no target_arch in %s output", ErrUnknownArchitecture, compiler)
	}
	return BackendForArch(arch)
}

// BackendForArch maps a Rust target_arch value to its LLVM backend.
func BackendForArch(arch string) (Backend, error) {
	switch {
	case arch == "x86" || arch == "x86_64":
		return "X86", nil
	case arch == "aarch64" || arch == "arm64ec":
		return "AArch64", nil
	case arch == "arm":
		return "ARM", nil
	case arch == "bpf":
		return "BPF", nil
	case arch == "hexagon":
		return "Hexagon", nil
	case strings.HasPrefix(arch, "mips"):
		return "Mips", nil
	case arch == "msp430":
		return "MSP430", nil
	case strings.HasPrefix(arch, "nvptx"):
		return "NVPTX", nil
	case strings.HasPrefix(arch, "powerpc"):
		return "PowerPC", nil
	case strings.HasPrefix(arch, "sparc"):
		return "Sparc", nil
	case arch == "s390x":
		return "SystemZ", nil
	case arch == "amdgpu":
		return "AMDGPU", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownArchitecture, arch)
}
