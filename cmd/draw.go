package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/vetcards/internal/quiz"
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw one random flashcard",
	RunE: func(cmd *cobra.Command, args []string) error {
		reveal, _ := cmd.Flags().GetBool("reveal")
		seed, _ := cmd.Flags().GetUint64("seed")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		sess, err := d.newSession(cmd, quiz.NewSource(seed))
		if err != nil {
			return err
		}

		if _, err := sess.Draw(cmd.Context()); err != nil {
			if errors.Is(err, quiz.ErrEmptyDeck) {
				return fmt.Errorf("the deck is empty; add a disease first")
			}
			return err
		}
		if reveal {
			sess.Reveal(cmd.Context())
		}

		printCard(cmd, sess.Current())
		return nil
	},
}

func printCard(cmd *cobra.Command, card *quiz.Card) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", card.Kind.Label(), card.Prompt)
	if !card.Revealed {
		return
	}
	for _, a := range card.Answer {
		fmt.Fprintf(out, "  • %s\n", a)
	}
}

func init() {
	drawCmd.Flags().Bool("reveal", false, "Also print the answer")
	drawCmd.Flags().Uint64("seed", 0, "Seed for a reproducible draw (0 = random)")
}
