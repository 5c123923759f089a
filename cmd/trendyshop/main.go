package main

import (
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"trendyshop/internal/config"
	"trendyshop/internal/http/handlers"
	applog "trendyshop/internal/log"
	"trendyshop/internal/repos"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	var sink io.Writer = os.Stdout
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			sink = io.MultiWriter(os.Stdout, f)
		}
	}
	applog.Init(sink, cfg.LogLevel)

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	deps, err := handlers.NewDeps(db, cfg)
	if err != nil {
		log.Fatal(err)
	}
	app := handlers.NewApp(cfg, deps)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		applog.Info(nil, "server.shutdown", nil)
		_ = app.Shutdown()
	}()

	applog.Info(nil, "server.start", map[string]any{"port": cfg.Port, "images": cfg.UploadDir})
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
