// ldsmcp serves Gospel Library search and content resources over MCP.
// By default it speaks the stdio transport; with an HTTP address configured
// it serves a REST surface plus MCP over SSE and streamable HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/mattnico/ldsmcp-sub001/internal/api"
	"github.com/mattnico/ldsmcp-sub001/internal/config"
	"github.com/mattnico/ldsmcp-sub001/internal/logging"
	"github.com/mattnico/ldsmcp-sub001/internal/mcp"
	"github.com/mattnico/ldsmcp-sub001/internal/metrics"
	"github.com/mattnico/ldsmcp-sub001/internal/resource"
	"github.com/mattnico/ldsmcp-sub001/internal/search"
	"github.com/mattnico/ldsmcp-sub001/internal/transport"
)

func main() {
	var configPath, httpAddr string
	flag.StringVar(&configPath, "config", "", "path to config.yaml")
	flag.StringVar(&httpAddr, "http", "", "serve HTTP on this address instead of stdio MCP")
	flag.Parse()

	// Optional .env for local development.
	_ = godotenv.Load()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			os.Stderr.WriteString("config: " + err.Error() + "\n")
			os.Exit(1)
		}
		cfg = loaded
	}
	if httpAddr != "" {
		cfg.Server.HTTPAddr = httpAddr
	}

	logger, err := logging.New(cfg.Server.LogLevel)
	if err != nil {
		os.Stderr.WriteString("logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	client := transport.NewClient(
		transport.WithTimeout(time.Duration(cfg.Search.TimeoutSeconds) * time.Second),
	)
	exec := search.NewExecutor(client, logger, cfg.Endpoints)
	resolver := resource.NewResolver(exec, cfg.Search.ContentBase, cfg.Search.Language, logger)
	mcpServer := mcp.NewServer(exec, resolver, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Server.HTTPAddr != "" {
		runHTTP(ctx, cfg.Server.HTTPAddr, exec, resolver, mcpServer, logger)
		return
	}

	logger.Info("serving MCP over stdio")
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("mcp server", zap.Error(err))
	}
}

func runHTTP(ctx context.Context, addr string, exec *search.Executor, resolver *resource.Resolver, mcpServer *sdkmcp.Server, logger *zap.Logger) {
	handlers := &api.Handlers{Exec: exec, Resolver: resolver, Log: logger}

	r := chi.NewRouter()
	r.Mount("/", handlers.Router())
	r.Handle("/mcp", mcp.NewStreamableHTTPHandler(mcpServer))
	r.Handle("/mcp/sse", mcp.NewSSEHandler(mcpServer))
	r.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving HTTP", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("http server", zap.Error(err))
	}
}
