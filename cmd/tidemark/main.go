// cmd/tidemark/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // for errors before the logger is ready
	"os"
	"path/filepath"

	"github.com/bethropolis/tidemark/internal/app"
	"github.com/bethropolis/tidemark/internal/config"
	"github.com/bethropolis/tidemark/internal/logger"
)

var version = "dev"

func main() {
	flags := config.NewFlags(config.AppName)
	args, err := flags.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}
	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	cfg, undecoded, cfgErr := config.Load(flags.ConfigFilePath, flags)

	// The terminal belongs to the UI, so logs go to a file unless asked
	// for stderr explicitly.
	if cfg.Logger.LogFilePath == "" {
		cfg.Logger.LogFilePath = defaultLogPath()
	}
	logCloser, err := logger.Setup(cfg.Logger)
	if err != nil {
		stlog.Fatalf("Failed to set up logging: %v", err)
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	logger.Infof("Starting %s %s...", config.AppName, version)
	if cfgErr != nil {
		logger.Warnf("Config: %v (using defaults)", cfgErr)
	}
	for _, key := range undecoded {
		logger.Warnf("Config: unknown key '%s'", key)
	}

	editorApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}
	if err := editorApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}

// defaultLogPath places the log in the user cache directory, falling
// back to the temp directory.
func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	dir = filepath.Join(dir, config.AppName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return filepath.Join(os.TempDir(), config.DefaultLogFileName)
	}
	return filepath.Join(dir, config.DefaultLogFileName)
}
