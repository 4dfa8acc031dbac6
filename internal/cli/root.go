package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/adamkeys/llvmshim"
	"github.com/adamkeys/llvmshim/internal/config"
)

var (
	cfgFile string
	debug   bool
	timeout time.Duration
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "llvmshim",
	Short: "Locate and initialize the LLVM library bundled with Rust",
	Long: `llvmshim - locate the LLVM codegen library bundled with a Rust toolchain

The library is searched for next to rustc, in the rustup toolchain directory,
on the dynamic library search path, next to cargo and in the compiler sysroot.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/llvmshim/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "limit for the whole search, 0 for none")

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(candidatesCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(nativeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Override config with flags
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debug
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = config.Duration(timeout)
	}
	if cfg.Debug {
		llvmshim.SetLogger(log.New(os.Stderr, "[llvmshim] ", log.LstdFlags))
	}
	return nil
}

// searchContext returns a context bounded by the configured timeout.
func searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	if cfg.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, time.Duration(cfg.Timeout))
}

// environment returns the process environment with the configured overrides applied.
func environment() llvmshim.Environment {
	env := llvmshim.OSEnvironment().WithOverrides(cfg.Overrides())
	env.ExtraDirs = cfg.ExtraDirs
	return env
}

// libraryPath returns the configured library path or searches for it.
func libraryPath(ctx context.Context) (string, error) {
	if cfg.LibraryPath != "" {
		return cfg.LibraryPath, nil
	}
	if path := os.Getenv("LIBLLVM_PATH"); path != "" {
		return path, nil
	}

	ctx, cancel := searchContext(ctx)
	defer cancel()
	return llvmshim.Find(ctx, environment())
}
