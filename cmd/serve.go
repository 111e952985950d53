package main

import (
	"adminops/internal/api"
	"adminops/internal/api/handler/v1handler"
	"adminops/internal/config"
	"adminops/internal/deleter"
	"adminops/internal/notifier"
	"adminops/internal/registrar"
	"adminops/internal/worker"
	"adminops/pkg/identity/httpidp"
	"adminops/pkg/logger"
	"adminops/pkg/mailer/smtpmail"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			transport := smtpmail.New(smtpmail.Options{
				Host:     cfg.Mail.Host,
				Port:     cfg.Mail.Port,
				Username: cfg.Mail.Account,
				Password: cfg.Mail.Password,
			})
			notif := notifier.New(strg, transport, notifier.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, notif)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			idp := httpidp.New(http.DefaultClient, cfg.Identity.BaseURL, cfg.Identity.Token)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Deleter:   deleter.New(strg, idp),
					Registrar: registrar.New(strg, registrar.NewOptions(cfg)),
				},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
