package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vetcards/internal/app"
)

// runApp opens the store, loads the deck, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	sess, err := d.newSession(cmd, nil)
	if err != nil {
		return err
	}

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	d.logger.Info("tui started", zap.String("session_id", sess.ID), zap.Int("diseases", sess.Deck().Len()))

	return app.Run(app.Options{
		Session:    sess,
		Logger:     d.logger,
		SkipSplash: noSplash,
	})
}
