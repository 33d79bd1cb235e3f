package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
	"tallydb/src/services"
	"tallydb/src/settings"
)

// printUsage prints helpful usage information
func printUsage() {
	log.Println("TallyDB - an embedded typed document store for business records")
	log.Println("\nUsage:")
	log.Println("  tallydb [options]")
	log.Println("\nOptions:")
	flag.PrintDefaults()

	log.Println("\nExamples:")
	log.Println("  tallydb --datadir=/data")
	log.Println("  tallydb --datadir=/data --journaldir=/data/journal")
}

func main() {
	// Get the global settings instance
	args := settings.GetSettings()

	// Define command line flags that map to the Arguments struct
	flag.StringVar(&args.DataDir, "datadir", "./datafiles", "Directory to store collection files")
	flag.StringVar(&args.JournalDir, "journaldir", "./journal", "Directory to store journal files")
	flag.Int64Var(&args.MaxJournalFileSize, "maxjournalfilesize", 1000000, "Maximum size of journal files in bytes (default: 1MB)")
	flag.BoolVar(&args.Verbose, "verbose", true, "Enable verbose logging")
	flag.BoolVar(&args.Debug, "debug", false, "Enable debug mode")

	// Parse the command line
	flag.Parse()

	// Validate the arguments
	if err := validateArguments(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err)
		printUsage()
		os.Exit(1)
	}

	logger, err := newLogger(args)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if args.Verbose {
		sugar.Infof("TallyDB starting with options:")
		sugar.Infof("  Data Directory: %s", args.DataDir)
		sugar.Infof("  Journal Directory: %s", args.JournalDir)
		sugar.Infof("  Max Journal File Size: %d", args.MaxJournalFileSize)
	}

	store, err := engine.Open(engine.Options{
		DataDir:            args.DataDir,
		JournalDir:         args.JournalDir,
		MaxJournalFileSize: args.MaxJournalFileSize,
		SchemaVersion:      entities.SchemaVersion,
		Logger:             sugar,
	}, entities.Collections())
	if err != nil {
		sugar.Fatalf("Failed to open store: %v", err)
	}

	manager := services.NewManager(store, sugar)
	_ = manager

	sugar.Infof("Store ready, %d collections registered", len(store.Registry().Kinds()))

	// Handle graceful shutdown
	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, syscall.SIGINT, syscall.SIGTERM)

	<-shutdownSignal
	fmt.Println("\nShutting down...")

	if err := store.Close(); err != nil {
		sugar.Errorf("Error closing store: %v", err)
	}

	fmt.Println("Shutdown complete")
}

func newLogger(args *settings.Arguments) (*zap.Logger, error) {
	if args.Debug {
		z := zap.NewDevelopmentConfig()
		return z.Build()
	}
	return zap.NewProduction()
}

// validateArguments validates the arguments and returns an error if invalid
func validateArguments(args *settings.Arguments) error {
	// Check if data directory exists and is accessible
	dirInfo, err := os.Stat(args.DataDir)
	if err != nil {
		if os.IsNotExist(err) {
			// Try to create the directory
			err = os.MkdirAll(args.DataDir, 0755)
			if err != nil {
				return fmt.Errorf("could not create data directory: %w", err)
			}
		} else {
			return fmt.Errorf("error accessing data directory: %w", err)
		}
	} else if !dirInfo.IsDir() {
		return fmt.Errorf("data directory path exists but is not a directory: %s", args.DataDir)
	}

	if args.JournalDir != "" {
		if err := os.MkdirAll(args.JournalDir, 0755); err != nil {
			return fmt.Errorf("could not create journal directory: %w", err)
		}
	}

	if args.MaxJournalFileSize < 1024 {
		return fmt.Errorf("max journal file size must be at least 1KB, got %d", args.MaxJournalFileSize)
	}

	return nil
}
