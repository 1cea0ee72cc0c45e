package cmd

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abhisek/nutriz/internal/app"
	"github.com/abhisek/nutriz/internal/screens/home"
)

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// runApp opens the store, builds the grading service and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if !interactive() {
		return errors.New("the practice TUI needs a terminal; see `nutriz --help` for scriptable commands")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	// The alternate screen owns the terminal, so operational logs are dropped.
	repo := st.EventRepo()
	grader, model := newGrader(cmd.Context(), cfg, repo, cfg.NewLogger(nil), os.Stderr)

	return app.Run(app.Options{
		Deps:  home.Deps{Grader: grader, Events: repo},
		Model: model,
	})
}
