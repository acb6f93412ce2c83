package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-range-utils/ranges"
)

// GetFlag returns a boolean flag, or exits if it is not defined.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return r
}

// GetInt returns an int flag, or exits if it is not defined.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return r
}

// getBound returns At(value) when the flag was given, Unbounded otherwise.
func getBound(cmd *cobra.Command, flag string) ranges.Bound {
	if !cmd.Flags().Changed(flag) {
		return ranges.Unbounded
	}
	return ranges.At(GetInt(cmd, flag))
}

// parseRange parses range arguments and logs the result at debug level.
func parseRange(args []string) (ranges.Range, error) {
	r, err := ranges.Parse(args...)
	if err != nil {
		return r, err
	}
	log.WithFields(log.Fields{
		"start": r.Start(),
		"stop":  r.Stop(),
		"step":  r.Step(),
		"len":   r.Len(),
	}).Debug("parsed range")
	if r.Len() != r.Count() {
		log.Debugf("%v steps away from its stop and yields nothing", r)
	}
	return r, nil
}
