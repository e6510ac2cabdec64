package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/gophstore/internal/client/api"
	"github.com/iudanet/gophstore/internal/client/cli"
	"github.com/iudanet/gophstore/internal/client/iocli"
	"github.com/iudanet/gophstore/internal/client/session"
	"github.com/iudanet/gophstore/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Store API base URL (default: "+api.DefaultBaseURL+")")
	dbPath := flag.String("db", "gophstore.db", "Path to local database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент: флаг > переменная окружения > публичный API
	baseURL := *serverURL
	if baseURL == "" {
		baseURL = os.Getenv("GOPHSTORE_SERVER")
	}
	if baseURL == "" {
		baseURL = api.DefaultBaseURL
	}
	apiClient := api.NewClient(baseURL)

	// Восстанавливаем сессию и корзину из локального хранилища
	store, err := session.New(ctx, apiClient, boltStorage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore local state: %v\n", err)
		os.Exit(1)
	}

	// Выполняем команду
	c := cli.New(apiClient, store, iocli.NewStdio())
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("GophStore Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
