package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/nutriz/internal/config"
	"github.com/abhisek/nutriz/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scenario and grading HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}

		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		logger := cfg.NewLogger(os.Stderr)
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		grader, model := newGrader(ctx, cfg, st.EventRepo(), logger, os.Stderr)
		if model == "" {
			model = "offline"
		}
		logger.Info("serving", "addr", cfg.Addr, "model", model)

		srv := server.New(grader,
			server.WithLogger(logger),
			server.WithAllowedOrigins(cfg.AllowedOrigins))
		return srv.ListenAndServe(ctx, cfg.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, else "+config.DefaultAddr+")")
}
