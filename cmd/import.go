package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vetcards/internal/transfer"
)

var importCmd = &cobra.Command{
	Use:   "import PATTERN...",
	Short: "Load diseases from JSON or YAML deck files",
	Long: `Load diseases from deck files matched by glob patterns (** is supported).
Files are read in sorted path order; entries are upserted in file order.
With --replace the current deck is discarded first.`,
	Example: `  vetcards import decks/**/*.yaml
  vetcards import --replace backup.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		replace, _ := cmd.Flags().GetBool("replace")

		paths, err := transfer.Expand(args)
		if err != nil {
			return err
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		sess, err := d.newSession(cmd, nil)
		if err != nil {
			return err
		}

		merged := sess.Deck().Clone()
		first := replace
		total := 0
		for _, p := range paths {
			src, err := transfer.ReadFile(p)
			if err != nil {
				return err
			}
			n := transfer.Merge(merged, src, first)
			first = false
			total += n
			d.logger.Info("deck file imported", zap.String("path", p), zap.Int("entries", n))
		}

		if err := sess.Replace(cmd.Context(), merged); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries from %d files; deck has %d diseases\n",
			total, len(paths), merged.Len())
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("replace", false, "Replace the deck instead of merging into it")
}
