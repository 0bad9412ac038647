package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aaronzipp/life-total/internal/config"
	"github.com/aaronzipp/life-total/internal/game"
	"github.com/aaronzipp/life-total/internal/handlers"
	"github.com/aaronzipp/life-total/internal/logger"
	"github.com/aaronzipp/life-total/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	loader, err := config.Load(*configPath)
	if err != nil {
		// logger is not built yet
		os.Stderr.WriteString("Failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	cfg := loader.Get()

	log, err := logger.New(cfg.Log)
	if err != nil {
		os.Stderr.WriteString("Failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	// Parse templates
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		log.Fatal("Failed to parse templates", zap.Error(err))
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("Failed to open static files", zap.Error(err))
	}

	tables := store.NewTableStore()
	ctx := &handlers.Context{
		TableStore:   tables,
		Templates:    templates,
		Log:          log,
		Defaults:     loader,
		Rand:         game.DefaultPicker,
		CookieName:   cfg.Session.CookieName,
		SecureCookie: cfg.Session.SecureCookie,
	}

	loader.Watch(func(c *config.Config) {
		log.Info("config reloaded",
			zap.Int("playerCount", c.Table.PlayerCount),
			zap.Int("startingLife", c.Table.StartingLife),
		)
	}, func(err error) {
		log.Warn("config reload rejected", zap.Error(err))
	})

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go tables.RunSweeper(runCtx, cfg.Session.SweepInterval, cfg.Session.TTL, log.Named("sweeper"))

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      ctx.Routes(static),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-runCtx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown failed", zap.Error(err))
	}
}
