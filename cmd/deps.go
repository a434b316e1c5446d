package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vetcards/internal/config"
	"github.com/abhisek/vetcards/internal/library"
	"github.com/abhisek/vetcards/internal/logging"
	"github.com/abhisek/vetcards/internal/quiz"
	"github.com/abhisek/vetcards/internal/session"
	"github.com/abhisek/vetcards/internal/store"
)

// deps bundles everything a command needs to work with the saved deck.
type deps struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *store.Store
	library *library.Library
}

// openDeps resolves config, opens the log file and the store.
func openDeps(cmd *cobra.Command) (*deps, error) {
	dbFlag, _ := cmd.Flags().GetString("db")
	cfg, err := config.Load(dbFlag)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	logger.Debug("store opened", zap.String("path", cfg.DBPath), zap.String("command", cmd.Name()))

	return &deps{
		cfg:     cfg,
		logger:  logger,
		store:   st,
		library: library.New(st.KVRepo(), logger),
	}, nil
}

// newSession loads the saved deck into a quiz session.
func (d *deps) newSession(cmd *cobra.Command, src quiz.Source) (*session.Session, error) {
	return session.New(cmd.Context(), session.Options{
		Library:   d.library,
		Selector:  quiz.NewSelector(src),
		EventRepo: d.store.EventRepo(),
		Logger:    d.logger,
	})
}

func (d *deps) Close() {
	_ = d.store.Close()
	_ = d.logger.Sync()
}
