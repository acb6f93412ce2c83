// Package cli implements the rangectl command line.
package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-range-utils/ranges"
)

// Version is filled when building with -ldflags, but *not* when installing
// via "go install".
var Version string

// NewRootCmd builds the rangectl command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rangectl",
		Short: "Inspect Python-style integer ranges.",
		Long: `Build, iterate, index and slice integer ranges with Python's range() semantics.

Range arguments are 1 to 3 integers (stop | start stop | start stop step).
Put "--" before arguments that start with a minus sign:

  rangectl seq -- 10 0 -2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(log.WarnLevel)
			if GetFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !GetFlag(cmd, "version") {
				return cmd.Help()
			}
			fmt.Fprint(cmd.OutOrStdout(), "rangectl ")
			if Version != "" {
				fmt.Fprint(cmd.OutOrStdout(), Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Fprint(cmd.OutOrStdout(), info.Main.Version)
			} else {
				fmt.Fprint(cmd.OutOrStdout(), "(unknown version)")
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.Flags().Bool("version", false, "print version and exit")

	rootCmd.AddCommand(newSeqCmd(), newLenCmd(), newIndexCmd(), newSliceCmd())
	return rootCmd
}

// Execute runs rangectl with os.Args and exits on failure. Contract
// violations (bad arity, non-integers, zero step, out-of-range index) exit
// with status 2, anything else with 1.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rangectl:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, ranges.ErrArity),
		errors.Is(err, ranges.ErrTypeKind),
		errors.Is(err, ranges.ErrZeroStep),
		errors.Is(err, ranges.ErrIndexOutOfRange):
		return 2
	default:
		return 1
	}
}
