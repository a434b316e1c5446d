package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add NAME SYMPTOMS",
	Short: "Add a disease or replace its symptoms",
	Long: `Add a disease with a comma-separated symptom list. An existing disease keeps
its place in the deck and has its symptoms replaced.`,
	Example: `  vetcards add "Anthrax" "sudden death, bleeding from orifices"`,
	Args:    cobra.ExactArgs(2),
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

		ok, err := sess.Upsert(cmd.Context(), args[0], args[1])
		if !ok {
			return fmt.Errorf("disease name and at least one symptom are required")
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", strings.TrimSpace(args[0]))
		return nil
	},
}
