package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vetcards/internal/quiz"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show flashcard practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		top, _ := cmd.Flags().GetInt("top")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		st, err := d.store.EventRepo().QuizStats(cmd.Context(), top)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sessions:  %d\n", st.Sessions)
		fmt.Fprintf(out, "Draws:     %d  (disease %d, symptom %d)\n",
			st.Draws, st.DrawsByKind[string(quiz.KindDisease)], st.DrawsByKind[string(quiz.KindSymptom)])
		fmt.Fprintf(out, "Reveals:   %d\n", st.Reveals)

		if len(st.TopPrompts) == 0 {
			return nil
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%-8s  %-40s  %5s\n", "Kind", "Most drawn", "Count")
		fmt.Fprintln(out, strings.Repeat("─", 57))
		for _, p := range st.TopPrompts {
			fmt.Fprintf(out, "%-8s  %-40s  %5d\n", p.Kind, p.Prompt, p.Count)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("top", 5, "Number of most-drawn prompts to list")
}
