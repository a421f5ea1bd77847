package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ehr/patientdesk/internal/config"
	"github.com/ehr/patientdesk/internal/desk"
	"github.com/ehr/patientdesk/internal/platform/auth"
	"github.com/ehr/patientdesk/internal/platform/logging"
	"github.com/ehr/patientdesk/internal/platform/metrics"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "patientdesk",
		Short:        "Hospital front desk: patient registry, appointments, emergencies and visit history",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(menuCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive front-desk menu on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Menu output owns stdout, so service logs go to stderr.
			logger := logging.NewWithWriter(os.Stderr, cfg.Env, cfg.LogLevel)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			d := desk.New(logger, nil)
			return desk.NewMenu(d, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
		},
	}
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			roles, _ := cmd.Flags().GetStringSlice("roles")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.TokenTTL
			}
			if cfg.AuthSecret == "" {
				return fmt.Errorf("AUTH_SECRET is required to sign tokens")
			}

			token, err := auth.IssueToken(jwtConfig(cfg), subject, roles, ttl, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().String("subject", "", "Token subject (user id)")
	cmd.Flags().StringSlice("roles", []string{auth.RoleNurse}, "Roles granted: "+strings.Join([]string{auth.RoleAdmin, auth.RolePhysician, auth.RoleNurse}, ", "))
	cmd.Flags().Duration("ttl", 0, "Token lifetime (defaults to TOKEN_TTL)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func jwtConfig(cfg *config.Config) auth.JWTConfig {
	return auth.JWTConfig{Issuer: cfg.AuthIssuer, SigningKey: cfg.SigningKey()}
}

func runServer() error {
	// Config
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Logger
	logger := logging.New(cfg.Env, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return err
	}
	if cfg.IsDev() {
		logger.Warn().Msg("running in development mode: requests without a token are treated as admin")
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}
	d := desk.New(logger, m)
	e := newServer(cfg, logger, d, m)

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		errCh <- e.Start(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
