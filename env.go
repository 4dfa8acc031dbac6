package llvmshim

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Environment variables consulted while searching for the library.
const (
	envPath            = "PATH"
	envRustupHome      = "RUSTUP_HOME"
	envRustupToolchain = "RUSTUP_TOOLCHAIN"
	envCargo           = "CARGO"
	envRustc           = "RUSTC"
	envHost            = "HOST"
)

// Tools invoked when the environment does not name a compiler.
const (
	rustc  = "rustc"
	rustup = "rustup"
)

// Environment is the world as seen by the library search: variable lookups and subprocess output. The search
// reads nothing from the process except through an Environment.
type Environment struct {
	// Getenv looks up an environment variable and reports whether it is set.
	Getenv func(key string) (string, bool)
	// Run executes a command and returns its standard output with surrounding whitespace removed.
	Run func(ctx context.Context, name string, args ...string) (string, error)
	// LibraryPathVar names the platform's dynamic-library search path variable.
	LibraryPathVar string
	// ExtraDirs are probed before any derived candidate.
	ExtraDirs []string
}

// OSEnvironment returns an Environment backed by the current process.
func OSEnvironment() Environment {
	return Environment{
		Getenv:         os.LookupEnv,
		Run:            runCommand,
		LibraryPathVar: libraryPathVar,
	}
}

// WithOverrides returns a copy of the environment where the supplied variables shadow the underlying lookup.
// Empty values are ignored.
func (e Environment) WithOverrides(vars map[string]string) Environment {
	lookup := e.Getenv
	overrides := make(map[string]string, len(vars))
	for k, v := range vars {
		if v != "" {
			overrides[k] = v
		}
	}
	e.Getenv = func(key string) (string, bool) {
		if v, ok := overrides[key]; ok {
			return v, true
		}
		if lookup == nil {
			return "", false
		}
		return lookup(key)
	}
	return e
}

// lookup returns the value of a variable that is set and non-empty.
func (e Environment) lookup(key string) (string, bool) {
	if e.Getenv == nil {
		return "", false
	}
	v, ok := e.Getenv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// run executes a command through the environment, failing on empty output.
func (e Environment) run(ctx context.Context, name string, args ...string) (string, error) {
	if e.Run == nil {
		return "", fmt.Errorf("%s: no command runner", name)
	}
	out, err := e.Run(ctx, name, args...)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("%s: empty output", name)
	}
	return out, nil
}

// runCommand runs name with args and returns its trimmed standard output.
func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimSpace(string(output)), nil
}
