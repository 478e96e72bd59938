package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/claim-desk/cliparse"
	"github.com/danielhkuo/claim-desk/idgen"
	"github.com/danielhkuo/claim-desk/metrics"
	"github.com/danielhkuo/claim-desk/middleware"
	"github.com/danielhkuo/claim-desk/registry"
	"github.com/danielhkuo/claim-desk/router"
	"github.com/danielhkuo/claim-desk/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the session store (nothing outlives the process)
	claimStore, err := store.Open(cfg.StoreType)
	if err != nil {
		slog.Error("store open failed", "error", err)
		os.Exit(1)
	}
	defer claimStore.Close()

	gen, err := idgen.ByName(cfg.IDStrategy)
	if err != nil {
		slog.Error("id generator setup failed", "error", err)
		os.Exit(1)
	}

	recorder := metrics.NewRecorder()

	reg, err := registry.New(context.Background(), claimStore,
		registry.WithIDGenerator(gen),
		registry.WithObserver(recorder),
	)
	if err != nil {
		slog.Error("registry setup failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Claim registry ready", "store", cfg.StoreType, "ids", cfg.IDStrategy)

	// Create router
	mux := router.NewRouter(reg, cfg, recorder)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
