package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/adithyatb/fittrack/internal"
	"github.com/adithyatb/fittrack/internal/config"
	"github.com/adithyatb/fittrack/internal/logging"

	log "github.com/sirupsen/logrus"
)

const serviceName = "fittrack-service"

// secrets are never kept in the TOML config
type secrets struct {
	sentryDSN        string
	redisPassword    string
	postgresPassword string
	honeycombEnabled bool
}

func secretsFromEnv() secrets {
	s := secrets{
		sentryDSN:        os.Getenv("SENTRY_DSN"),
		redisPassword:    os.Getenv("FITTRACK_REDIS_PASS"),
		postgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		honeycombEnabled: os.Getenv("HONEYCOMB_ENABLED") == "true",
	}

	if s.redisPassword == "" {
		log.Warnln("redis password not set, use FITTRACK_REDIS_PASS")
	}
	if s.postgresPassword == "" {
		log.Warnln("postgres password not set, use POSTGRES_PASSWORD")
	}
	if !s.honeycombEnabled {
		log.Debugln("honeycomb tracing disabled")
	} else {
		if os.Getenv("HONEYCOMB_API_KEY") == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
		if os.Getenv("OTEL_SERVICE_NAME") == "" {
			log.Warnln("OTEL_SERVICE_NAME env var not set")
		}
	}

	return s
}

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	envSecrets := secretsFromEnv()
	if err := logging.Setup(logging.LoggerSetupParams{
		ServiceName:      serviceName,
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        envSecrets.sentryDSN,
		SentryServerName: serviceName,
	}); err != nil {
		log.Errorf("logging setup: %s", err)
	}

	log.Warnf("---->> running in [%s] environment", *env)
	log.Debugf("calendar days computed in: %s", cfg.Timezone)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:                  cfg,
		PostgresPassword:        envSecrets.postgresPassword,
		RedisPassword:           envSecrets.redisPassword,
		HoneycombTracingEnabled: envSecrets.honeycombEnabled,
	})
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnln("termination signal received, shutting down ...")
	server.GracefulShutdown()
}
