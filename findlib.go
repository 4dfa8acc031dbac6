package llvmshim

import (
	"context"
	"fmt"
	"path/filepath"
)

// libraryNames are the file names of the LLVM codegen library, probed in this order in every candidate
// directory. Probing all three instead of switching on the host OS keeps the search identical everywhere.
var libraryNames = []string{
	"librustc_codegen_llvm-llvm.so",
	"librustc_codegen_llvm-llvm.dylib",
	"rustc_codegen_llvm-llvm.dll",
}

// Candidate is a directory that may hold the library, tagged with the strategy that produced it.
type Candidate struct {
	Dir      string
	Strategy string
}

// strategy produces candidate directories. A non-nil error aborts the search; strategies that merely find
// nothing return an empty slice.
type strategy struct {
	name    string
	collect func(ctx context.Context, env Environment) ([]string, error)
}

// strategies lists the search strategies in priority order.
var strategies = []strategy{
	{"configured", configuredDirs},
	{"search-path", searchPathDirs},
	{"rustup-home", rustupHomeDirs},
	{"library-path", libraryPathDirs},
	{"cargo", cargoDirs},
	{"rustc-sysroot", sysrootDirs},
	{"rustup-which", rustupWhichDirs},
}

// Find returns the path of the first library file found in the candidate directories. If none of them
// contains the library a *NotFoundError listing every candidate is returned.
func Find(ctx context.Context, env Environment) (string, error) {
	candidates, err := Candidates(ctx, env)
	if err != nil {
		return "", err
	}

	for _, c := range candidates {
		if path, ok := probe(c.Dir); ok {
			logger.Printf("found %s (%s)", path, c.Strategy)
			return path, nil
		}
	}
	return "", &NotFoundError{Candidates: candidates}
}

// Candidates returns the directories that may contain the library in the order they are searched.
// Duplicates produced by different strategies are kept.
func Candidates(ctx context.Context, env Environment) ([]Candidate, error) {
	var candidates []Candidate
	for _, s := range strategies {
		dirs, err := s.collect(ctx, env)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		for _, dir := range dirs {
			candidates = append(candidates, Candidate{Dir: dir, Strategy: s.name})
		}
	}
	return candidates, nil
}

// probe checks dir for each of the library names and returns the first that exists.
func probe(dir string) (string, bool) {
	for _, name := range libraryNames {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path, true
		}
	}
	return "", false
}

// configuredDirs returns the directories supplied by configuration.
func configuredDirs(_ context.Context, env Environment) ([]string, error) {
	return append([]string(nil), env.ExtraDirs...), nil
}

// searchPathDirs covers toolchains built from source, where the codegen-backends directory sits next to the
// directory holding rustc.
func searchPathDirs(_ context.Context, env Environment) ([]string, error) {
	value, ok := env.lookup(envPath)
	if !ok {
		return nil, nil
	}

	var dirs []string
	for _, item := range filepath.SplitList(value) {
		dirs = append(dirs, filepath.Join(parent(item), "codegen-backends"))
	}
	return dirs, nil
}

// rustupHomeDirs derives the backend directory of the toolchain rustup selected for this process.
func rustupHomeDirs(_ context.Context, env Environment) ([]string, error) {
	home, ok := env.lookup(envRustupHome)
	if !ok {
		return nil, nil
	}
	toolchain, ok := env.lookup(envRustupToolchain)
	if !ok {
		return nil, fmt.Errorf("%w: %s is set but %s is not", ErrInconsistentEnvironment, envRustupHome, envRustupToolchain)
	}

	arch := ExtractArch(toolchain)
	if arch == "" {
		logger.Printf("rustup-home: no architecture in toolchain %q", toolchain)
		return nil, nil
	}
	return []string{backendDir(filepath.Join(home, "toolchains", toolchain), arch)}, nil
}

// libraryPathDirs treats the parent of every dynamic-library search path entry as a toolchain root.
func libraryPathDirs(_ context.Context, env Environment) ([]string, error) {
	if env.LibraryPathVar == "" {
		return nil, nil
	}
	value, ok := env.lookup(env.LibraryPathVar)
	if !ok {
		return nil, nil
	}

	var dirs []string
	for _, item := range filepath.SplitList(value) {
		if dir, ok := toolchainBackendDir(parent(item), ""); ok {
			dirs = append(dirs, dir)
		}
	}
	return dirs, nil
}

// cargoDirs uses the toolchain holding the cargo binary that is running the build.
func cargoDirs(_ context.Context, env Environment) ([]string, error) {
	cargo, ok := env.lookup(envCargo)
	if !ok {
		return nil, nil
	}

	host, _ := env.lookup(envHost)
	if dir, ok := toolchainBackendDir(parent(parent(cargo)), host); ok {
		return []string{dir}, nil
	}
	return nil, nil
}

// sysrootDirs asks the compiler where it is installed.
func sysrootDirs(ctx context.Context, env Environment) ([]string, error) {
	compiler, err := compilerPath(ctx, env)
	if err != nil {
		logger.Printf("rustc-sysroot: %v", err)
		return nil, nil
	}
	sysroot, err := env.run(ctx, compiler, "--print", "sysroot")
	if err != nil {
		logger.Printf("rustc-sysroot: %v", err)
		return nil, nil
	}

	arch, ok := env.lookup(envHost)
	if !ok {
		if version, err := env.run(ctx, compiler, "-vV"); err == nil {
			arch, ok = hostFromVersion(version)
		} else {
			logger.Printf("rustc-sysroot: %v", err)
		}
	}
	if !ok {
		if name, found := toolchainName(sysroot); found {
			arch = ExtractArch(name)
		}
	}
	if arch == "" {
		logger.Printf("rustc-sysroot: no architecture for sysroot %q", sysroot)
		return nil, nil
	}
	return []string{backendDir(sysroot, arch)}, nil
}

// rustupWhichDirs uses the toolchain of the compiler rustup reports as active.
func rustupWhichDirs(ctx context.Context, env Environment) ([]string, error) {
	path, err := env.run(ctx, rustup, "which", rustc)
	if err != nil {
		logger.Printf("rustup-which: %v", err)
		return nil, nil
	}
	if dir, ok := toolchainBackendDir(parent(parent(path)), ""); ok {
		return []string{dir}, nil
	}
	return nil, nil
}

// compilerPath returns RUSTC when set, otherwise the compiler rustup reports as active.
func compilerPath(ctx context.Context, env Environment) (string, error) {
	if compiler, ok := env.lookup(envRustc); ok {
		return compiler, nil
	}
	return env.run(ctx, rustup, "which", rustc)
}

// toolchainBackendDir builds the backend directory of the toolchain rooted at root. When arch is empty it is
// extracted from the name of root.
func toolchainBackendDir(root, arch string) (string, bool) {
	if arch == "" {
		name, ok := toolchainName(root)
		if !ok {
			return "", false
		}
		arch = ExtractArch(name)
	}
	if arch == "" {
		return "", false
	}
	return backendDir(root, arch), true
}

// backendDir returns root/lib/rustlib/<arch>/codegen-backends.
func backendDir(root, arch string) string {
	return filepath.Join(root, "lib", "rustlib", arch, "codegen-backends")
}
