package cli

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/ferex/internal/api"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	ListenAddr string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scenario store and calculator over HTTP",
		Long: `Serve the scenario store and pension calculator as a local HTTP API
for the desktop front end.

The store is opened once at startup; an initialization failure is fatal
and the server never starts without working persistence. Shuts down
gracefully on SIGINT/SIGTERM.

Example:
  ferex serve
  ferex serve --listen 127.0.0.1:9000 --data-dir ~/.local/share/ferex`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ListenAddr, "listen", "", "listen address (default from config)")

	return cmd
}

func runServer(opts *ServeOptions, cmd *cobra.Command) error {
	st, cfg, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()
	setupLogging(opts.RootOptions, cfg)

	addr := opts.ListenAddr
	if addr == "" {
		addr = cfg.ListenAddr
	}

	slog.Info("scenario store ready", "data_dir", cfg.DataDir)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := api.NewServer(st, nil, nil, slog.Default())
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		return WrapExitError(ExitFailure, "http server failed", err)
	}
	return nil
}
