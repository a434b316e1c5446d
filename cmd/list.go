package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vetcards/internal/deck"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the deck by disease (or by symptom)",
	RunE: func(cmd *cobra.Command, args []string) error {
		by, _ := cmd.Flags().GetString("by")
		if by != "disease" && by != "symptom" {
			return fmt.Errorf("unknown --by value %q (want disease or symptom)", by)
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		dk, err := d.library.Load(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if by == "symptom" {
			inv := deck.Invert(dk)
			fmt.Fprintf(out, "%-32s  %s\n", "Symptom", "Diseases")
			fmt.Fprintln(out, strings.Repeat("─", 80))
			for _, s := range inv.Symptoms() {
				fmt.Fprintf(out, "%-32s  %s\n", s, strings.Join(inv.Diseases(s), ", "))
			}
			fmt.Fprintf(out, "\n%d symptoms\n", inv.Len())
			return nil
		}

		fmt.Fprintf(out, "%-32s  %s\n", "Disease", "Symptoms")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for name, symptoms := range dk.All() {
			fmt.Fprintf(out, "%-32s  %s\n", name, deck.JoinSymptoms(symptoms))
		}
		fmt.Fprintf(out, "\n%d diseases\n", dk.Len())
		return nil
	},
}

func init() {
	listCmd.Flags().String("by", "disease", "Index to list: disease or symptom")
}
