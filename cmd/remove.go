package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a disease from the deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		sess, err := d.newSession(cmd, nil)
		if err != nil {
			return err
		}

		removed, err := sess.Remove(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if removed {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is not in the deck\n", args[0])
		}
		return nil
	},
}
