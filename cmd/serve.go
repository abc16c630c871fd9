package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/yyyklk/news-app/internal/browser"
	"github.com/yyyklk/news-app/internal/web"
	"go.uber.org/zap"
)

var (
	flagAddr string
	flagOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser UI and JSON API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (default from config)")
	serveCmd.Flags().BoolVar(&flagOpen, "open", false, "open the page in the default browser")
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := openSession(logToStderr)
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := s.summarizers()
	if err != nil {
		return err
	}

	if !flagVerbose {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, err := web.New(web.Options{
		Articles:     s.articles,
		Digest:       d,
		Store:        s.store,
		DefaultStart: s.cfg.StartDate(),
		Earliest:     s.cfg.Earliest(),
		Log:          s.log,
	})
	if err != nil {
		return fmt.Errorf("building web server: %w", err)
	}

	addr := flagAddr
	if addr == "" {
		addr = s.cfg.Addr
	}
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	if flagOpen {
		url := browser.LocalURL(addr)
		if err := browser.Open(url); err != nil {
			s.log.Warn("opening browser", zap.String("url", url), zap.Error(err))
		}
	}

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
