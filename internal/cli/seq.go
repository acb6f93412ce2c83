package cli

import (
	"github.com/spf13/cobra"
)

func newSeqCmd() *cobra.Command {
	seqCmd := &cobra.Command{
		Use:   "seq [flags] [start] stop [step]",
		Short: "print the values of a range.",
		Long: `Print every value of range(start, stop, step), one per line, or wrapped to the
terminal width when writing to a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRange(args)
			if err != nil {
				return err
			}
			return writeValues(cmd.OutOrStdout(), r, GetFlag(cmd, "json"))
		},
	}
	seqCmd.Flags().Bool("json", false, "print values as a JSON array")
	return seqCmd
}
