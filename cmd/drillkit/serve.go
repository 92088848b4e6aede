package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kbukum/recordkit/config"
	"github.com/kbukum/recordkit/logger"
	"github.com/kbukum/recordkit/observability"
	"github.com/kbukum/recordkit/server"
	"github.com/kbukum/recordkit/version"
)

var configFile string

// telemetryConfig toggles OTLP export. Off by default so the demo runs
// without a collector.
type telemetryConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
}

// appConfig is the full configuration of the serve command.
type appConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Server               server.Config   `yaml:"server" mapstructure:"server"`
	Telemetry            telemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

func (c *appConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
	if c.Telemetry.Endpoint == "" {
		c.Telemetry.Endpoint = "localhost:4318"
	}
}

func (c *appConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the drills over HTTP",
	Long: `Start an HTTP server exposing the drills as read-only JSON routes
under /v1, plus /health and /version.

Configuration is read from a YAML file (config.yml searched under
cmd/drillkit, ./config, and the working directory), a .env file, and
DRILLKIT_* environment variables.

Examples:
  drillkit serve
  drillkit serve --config ./config.yml`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to a config file")
}

func runServe(_ *cobra.Command, _ []string) {
	var cfg appConfig
	opts := []config.LoaderOption{}
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Failed to load configuration: %v\n", err)
		os.Exit(ExitConfigError)
	}

	logger.Init(cfg.Logging)
	log := logger.New(&cfg.Logging, cfg.Name)
	log.Info("Configuration loaded", map[string]interface{}{
		"environment": cfg.Environment,
		"version":     version.GetShortVersion(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handlers, err := server.NewHandlers(cfg.Name, log)
	if err != nil {
		log.Fatal("Failed to load datasets", map[string]interface{}{"error": err.Error()})
	}

	if cfg.Telemetry.Enabled {
		tracerCfg := observability.DefaultTracerConfig(cfg.Name)
		tracerCfg.ServiceVersion = version.GetVersionInfo().Version
		tracerCfg.Environment = cfg.Environment
		tracerCfg.Endpoint = cfg.Telemetry.Endpoint

		tp, err := observability.InitTracer(ctx, tracerCfg)
		if err != nil {
			log.Fatal("Failed to init tracer", map[string]interface{}{"error": err.Error()})
		}
		defer func() { _ = tp.Shutdown(context.Background()) }()

		meterCfg := observability.DefaultMeterConfig(cfg.Name)
		meterCfg.ServiceVersion = tracerCfg.ServiceVersion
		meterCfg.Environment = cfg.Environment
		meterCfg.Endpoint = cfg.Telemetry.Endpoint

		mp, err := observability.InitMeter(ctx, meterCfg)
		if err != nil {
			log.Fatal("Failed to init meter", map[string]interface{}{"error": err.Error()})
		}
		defer func() { _ = mp.Shutdown(context.Background()) }()

		metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
		if err != nil {
			log.Fatal("Failed to create metrics", map[string]interface{}{"error": err.Error()})
		}
		handlers.WithMetrics(metrics)
	}

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	handlers.Register(srv.GinEngine())

	if err := srv.Start(ctx); err != nil {
		log.Fatal("Failed to start server", map[string]interface{}{"error": err.Error()})
	}

	<-ctx.Done()
	if err := srv.Stop(context.Background()); err != nil {
		log.Error("Shutdown error", map[string]interface{}{"error": err.Error()})
		os.Exit(ExitRuntimeError)
	}
}
