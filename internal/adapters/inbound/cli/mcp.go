package cli

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	mcpadapter "github.com/archscore/archscore/internal/adapters/inbound/mcp"
	"github.com/archscore/archscore/internal/adapters/outbound/catalog"
	"github.com/archscore/archscore/internal/adapters/outbound/contextfile"
	"github.com/archscore/archscore/internal/adapters/outbound/metrics"
	"github.com/archscore/archscore/internal/application"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// catalogCacheSize bounds how many catalog versions the MCP server keeps parsed.
const catalogCacheSize = 8

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the archscore MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var (
		catalogPath string
		configPath  string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the archscore MCP server (stdio)",
		Long: "Start the archscore MCP server using stdio transport. This lets AI assistants score application " +
			"contexts, list clarification questions and inspect the catalog.",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newAppEnv(cmd)
			defer func() { _ = env.logger.Sync() }()

			rt, err := newMCPRuntime(env, catalogPath, configPath)
			if err != nil {
				return err
			}

			if metricsAddr == "" {
				metricsAddr = env.settings.MetricsAddr
			}
			if metricsAddr != "" {
				srv := newMetricsServer(metricsAddr, rt.registry)
				go func() {
					env.logger.Info("metrics server listening", zap.String("address", metricsAddr))
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						env.logger.Error("metrics server exited", zap.Error(err))
					}
				}()
				defer srv.Close()
			}

			s := mcpadapter.NewArchScoreMCPServer(version, mcpadapter.Deps{
				Engine:    rt.engine,
				Validator: rt.validator,
				Logger:    env.logger,
			})
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Architecture catalog loaded at startup")
	cmd.Flags().StringVar(&configPath, "config", "", "Scoring profile (defaults to ./.archscore.yaml)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")

	return cmd
}

// mcpRuntime is everything the MCP server needs besides its transport.
type mcpRuntime struct {
	engine    *application.ScoringEngine
	validator *application.ValidateService
	registry  *prometheus.Registry
}

func newMCPRuntime(env *appEnv, catalogFlag, configFlag string) (*mcpRuntime, error) {
	cfg, err := env.scoringConfig(configFlag)
	if err != nil {
		return nil, err
	}

	loader, err := catalog.NewCached(catalog.New(cfg.MinCatalogVersion), catalogCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating catalog cache: %w", err)
	}
	reader := contextfile.New()

	observer := metrics.New()
	reg := prometheus.NewRegistry()
	if err := observer.Register(reg); err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	engine := application.NewScoringEngine(cfg, loader, reader,
		application.WithLogger(env.logger),
		application.WithObserver(observer),
	)

	// The catalog is optional at startup; archscore_load_catalog can load one later.
	if path, err := env.catalogPath(catalogFlag); err == nil {
		if _, err := engine.LoadCatalog(path); err != nil {
			return nil, err
		}
	}

	return &mcpRuntime{
		engine:    engine,
		validator: application.NewValidateService(loader, reader),
		registry:  reg,
	}, nil
}

func newMetricsServer(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}
