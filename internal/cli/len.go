package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLenCmd() *cobra.Command {
	lenCmd := &cobra.Command{
		Use:   "len [flags] [start] stop [step]",
		Short: "print the length of a range.",
		Long: `Print ceil(|stop - start| / |step|). With --count, print the number of values
iteration actually produces, which is 0 when step points away from stop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRange(args)
			if err != nil {
				return err
			}
			if GetFlag(cmd, "count") {
				fmt.Fprintln(cmd.OutOrStdout(), r.Count())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), r.Len())
			}
			return nil
		},
	}
	lenCmd.Flags().Bool("count", false, "print the number of values produced instead")
	return lenCmd
}
