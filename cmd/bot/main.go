package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/send-it-later/internal/config"
	"github.com/diegoclair/send-it-later/internal/database"
	"github.com/diegoclair/send-it-later/internal/domain/contract"
	"github.com/diegoclair/send-it-later/internal/domain/service"
	"github.com/diegoclair/send-it-later/internal/handlers"
	"github.com/diegoclair/send-it-later/internal/logger"
	"github.com/diegoclair/send-it-later/internal/metrics"
	"github.com/diegoclair/send-it-later/internal/slackapi"
	"github.com/diegoclair/send-it-later/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("bot stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var dm contract.DataManager
	if cfg.Mode() == config.ModeOAuth {
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()

		zlog.Info("running migrations", zap.String("path", cfg.DatabasePath))
		if err := sqlite.Migrate(db.DB()); err != nil {
			return err
		}
		dm = database.NewInstance(db)
	}

	burst := int(cfg.SlackAPIRPS)
	if burst < 1 {
		burst = 1
	}
	slackClients := slackapi.NewFactory(rate.NewLimiter(rate.Limit(cfg.SlackAPIRPS), burst))

	services := service.New(cfg, dm, slackClients, zlog)

	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return err
	}

	router := handlers.NewRouter(services.Authorizer, services.Message, services.Installation, cfg.AppInstallURL, recorder, zlog)

	var slackHandler *handlers.SlackHandler
	if !cfg.SocketMode() {
		slackHandler = handlers.New(router, cfg.SlackSigningSecret, zlog)
	}

	var oauthHandler *handlers.OAuthHandler
	if services.Installation != nil {
		exchange := handlers.SlackOAuthExchanger(cfg, &http.Client{Timeout: 30 * time.Second})
		oauthHandler = handlers.NewOAuthHandler(cfg, services.Installation, exchange, recorder, zlog)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewServer(slackHandler, oauthHandler, registry, zlog),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Port), zap.String("mode", string(cfg.Mode())))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if cfg.SocketMode() {
		api := slack.New(cfg.SlackBotToken, slack.OptionAppLevelToken(cfg.SlackAppToken))
		listener := handlers.NewSocketModeListener(api, router, zlog)
		go func() {
			if err := listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		zlog.Info("shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
