// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/events"
	"github.com/danielhkuo/ballotbox/router"
	"github.com/danielhkuo/ballotbox/store"
)

const shutdownTimeout = 10 * time.Second

// Swapped out in tests
var (
	openStore  = openConfiguredStore
	dialEvents = func(url, queue string) (events.Publisher, error) {
		return events.DialAMQP(url, queue)
	}
)

func main() {
	// Stop on Ctrl-C or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("Server failed", "error", err)
		stop()
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// run wires the server from args and serves until ctx is done. Every
// resource it opens is released before it returns.
func run(ctx context.Context, args []string) error {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		return fmt.Errorf("error parsing flags: %w", err)
	}

	// Open the vote store
	voteStore, closeStore, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("store setup failed: %w", err)
	}
	defer closeStore()
	slog.Info("Store ready", "store", cfg.StoreType)

	// Mutation events are optional
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQPURL != "" {
		publisher, err = dialEvents(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			return fmt.Errorf("amqp connection failed: %w", err)
		}
		slog.Info("Publishing events", "queue", cfg.AMQPQueue)
	}
	defer publisher.Close()

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen failed: %w", err)
	}

	server := &http.Server{
		Handler: router.NewRouter(voteStore, publisher),
		Addr:    cfg.Addr(),
	}

	slog.Info("Listening", "addr", ln.Addr().String())
	return serve(ctx, server, ln)
}

// serve runs server on ln until ctx is done, then waits for in-flight
// requests to finish before returning.
func serve(ctx context.Context, server *http.Server, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() {
		errc <- server.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		server.Close()
		<-errc
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// openConfiguredStore builds the configured backend and returns its cleanup func
func openConfiguredStore(cfg cliparse.Config) (store.VoteStore, func() error, error) {
	var driver string
	switch cfg.StoreType {
	case cliparse.StoreSQLite:
		driver = store.DriverSQLite
	case cliparse.StorePostgres:
		driver = store.DriverPostgres
	default:
		return store.NewMemoryStore(), func() error { return nil }, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sqlStore, err := store.OpenSQLStore(ctx, driver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return sqlStore, sqlStore.Close, nil
}
