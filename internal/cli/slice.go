package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSliceCmd() *cobra.Command {
	sliceCmd := &cobra.Command{
		Use:   "slice [flags] [start] stop [step]",
		Short: "slice a range and print the result.",
		Long: `Slice a range with Python's [start:stop:step] rules and print the resulting
range followed by its values. Omitted --start / --stop leave that bound open.

rangectl slice --step=-1 -- 0 10 2
range(8, -2, -2)
8 6 4 2 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRange(args)
			if err != nil {
				return err
			}
			start, stop := getBound(cmd, "start"), getBound(cmd, "stop")
			step := GetInt(cmd, "step")
			sliced, err := r.Slice(start, stop, step)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"start": start.String(),
				"stop":  stop.String(),
				"step":  step,
			}).Debugf("sliced %v into %v", r, sliced)

			asJSON := GetFlag(cmd, "json")
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), sliced)
			}
			return writeValues(cmd.OutOrStdout(), sliced, asJSON)
		},
	}
	sliceCmd.Flags().Int("start", 0, "first position of the slice (default: open)")
	sliceCmd.Flags().Int("stop", 0, "exclusive end position of the slice (default: open)")
	sliceCmd.Flags().Int("step", 1, "slice step; negative walks backwards")
	sliceCmd.Flags().Bool("json", false, "print values as a JSON array")
	return sliceCmd
}
