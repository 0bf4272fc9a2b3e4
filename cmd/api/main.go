package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookstore-service/cmd/api/book"
	"github.com/bookstore-service/cmd/api/config"
	"github.com/bookstore-service/cmd/api/database"
	bookhttp "github.com/bookstore-service/cmd/api/http"
	"github.com/bookstore-service/cmd/api/inmemory"
	"github.com/bookstore-service/cmd/api/notifications"
)

func main() {
	err := run()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("BOOKSTORE_CONFIG"))
	if err != nil {
		return err
	}

	//the database is opened lazily, by the first action that needs it:
	opener, closeDb, err := newOpener(cfg.Database)
	if err != nil {
		return err
	}
	defer closeDb()

	ntfy := notifications.NewNtfy(cfg.Notifications.Enabled, cfg.Notifications.BaseURL, cfg.Notifications.Topic, &http.Client{})
	bookService := book.NewService(opener, ntfy, cfg.Notifications.Timeout)
	bookHandler := bookhttp.NewBookHandler(bookService)
	bookhttp.RequestTimeout = cfg.HTTP.RequestTimeout

	//create and init http server:
	server := bookhttp.NewServer(bookhttp.ServerConfig{Port: cfg.HTTP.Port}, bookHandler)

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", server.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("unexpected http server error: %w", err)
		}
		close(serverErr)
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sc:
	case err := <-serverErr:
		return err
	}

	ctx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownRelease()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP shutdown error: %w", err)
	}
	log.Println("Graceful shutdown complete.")
	return nil
}

func newOpener(cfg config.Database) (book.Opener, func(), error) {
	if cfg.Driver == "memory" {
		store, err := inmemory.NewInMemoryStore()
		if err != nil {
			return nil, nil, fmt.Errorf("creating in-memory store: %w", err)
		}
		return store, func() {}, nil
	}

	helper := database.NewHelper(cfg.Driver, cfg.URL, cfg.Version, cfg.MigrationsPath)
	return helper, func() {
		if err := helper.Close(); err != nil {
			log.Println("closing db:", err)
		}
	}, nil
}
