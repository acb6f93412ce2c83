package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-range-utils/ranges"
)

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index [flags] -- i [start] stop [step]",
		Short: "print the value at a position of a range.",
		Long: `Print the value at position i. Negative positions count from the end, so
"rangectl index -- -1 0 5" prints 4.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", ranges.ErrTypeKind, args[0])
			}
			r, err := parseRange(args[1:])
			if err != nil {
				return err
			}
			v, err := r.Index(i)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
