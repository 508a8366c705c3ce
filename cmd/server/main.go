package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/demoapps/reqlog/api"
	"github.com/demoapps/reqlog/pkg/config"
	"github.com/demoapps/reqlog/pkg/environment"
	"github.com/demoapps/reqlog/pkg/httpserver"
	"github.com/demoapps/reqlog/pkg/identity"
	"github.com/demoapps/reqlog/pkg/logger"
	"github.com/demoapps/reqlog/pkg/requestid"
)

// version is overridable at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

type appConfig struct {
	Name       string `env:"APP_NAME" envDefault:"structlog-demo"`
	Env        string `env:"APP_ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL"`
	UserHeader string `env:"AUTH_USER_HEADER" envDefault:"X-User-Name"`
}

func main() {
	var cfg struct {
		App  appConfig
		HTTP httpserver.Config
	}
	config.MustLoad(&cfg)

	env := environment.Parse(cfg.App.Env)

	logOpts := []logger.Option{
		logger.WithEnvironment(env, cfg.App.Name),
	}
	if cfg.App.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevelName(cfg.App.LogLevel))
	}

	// The request middleware binds request_id and user onto its
	// per-request handles, so the router logger carries no context
	// extractors; registering them there would emit both keys twice per
	// record. The default logger serves code outside the middleware path
	// and pulls the same values from context instead.
	log := logger.New(logOpts...)
	logger.SetAsDefault(logger.New(append(logOpts,
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			identity.LoggerExtractor(),
		),
	)...))

	mainLog := logger.Named(log, "main")

	router := api.Router(log, api.Config{
		ServiceName: cfg.App.Name,
		Environment: env,
		UserHeader:  cfg.App.UserHeader,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(mainLog),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("application starting up",
				slog.String("version", version),
				slog.String("addr", cfg.HTTP.Addr),
			)
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("application shutting down")
		}),
	)

	if err := srv.Run(context.Background(), router); err != nil {
		mainLog.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
