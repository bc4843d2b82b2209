package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pokedex/internal/pokeapi"
	"pokedex/internal/web"
)

func newServeCmd(a *app) *cobra.Command {
	var addr, apiURL string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Pokédex web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			if apiURL != "" {
				a.cfg.API.BaseURL = apiURL
			}
			return serve(cmd.Context(), a)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&apiURL, "api", "", "PokeAPI base URL (overrides config)")
	return cmd
}

func serve(ctx context.Context, a *app) error {
	cfg, log := a.cfg, a.logger
	gin.SetMode(gin.ReleaseMode)

	client := pokeapi.NewClient(cfg.API.BaseURL,
		pokeapi.WithTimeout(cfg.API.Timeout),
		pokeapi.WithLogger(log.Named("pokeapi")),
	)
	h := web.NewHandler(client, cfg.API.ListLimit, cfg.API.IndexLimit, log.Named("web"))
	router, err := web.NewRouter(h, cfg.API.BaseURL)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("upstream", cfg.API.BaseURL))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err, ok := <-errCh:
		if ok {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown error", zap.Error(err))
	}
	log.Info("server stopped")
	return nil
}
