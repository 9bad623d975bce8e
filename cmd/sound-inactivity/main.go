package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/josemoura212/sound-inactivity/pkg/config"
)

func main() {
	var (
		configPath   string
		timeoutMins  uint64
		pollInterval time.Duration
		logLevel     string
		help         bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Uint64Var(&timeoutMins, "timeout", 0, "Inactivity timeout in minutes (0 = use config)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Idle check interval (0 = use config)")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.Parse()

	if help {
		printUsage()
		os.Exit(0)
	}

	if configPath != "" {
		if err := os.Setenv("SOUND_INACTIVITY_CONFIG", configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config path: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Override config with command line flags
	if timeoutMins > 0 {
		cfg.TimeoutMinutes = timeoutMins
	}
	if pollInterval > 0 {
		cfg.PollInterval = pollInterval
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing log level: %v\n", err)
		os.Exit(1)
	}
	logger.SetLevel(level)

	deps := NewDependencies(cfg, logger)
	app := NewApplication(deps)

	timeout := cfg.TimeoutMinutes
	if err := app.SetTimeoutMinutes(&timeout); err != nil {
		logger.WithError(err).Error("failed to apply inactivity timeout")
		os.Exit(1)
	}

	app.StartMonitor()

	// Run until interrupted; the OS reclaims everything at process exit,
	// but a clean stop restores the audio state first.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")
	app.Stop()
}

func printUsage() {
	fmt.Println("sound-inactivity - mutes audio after prolonged input inactivity")
	fmt.Println()
	fmt.Println("Usage: sound-inactivity [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  SOUND_INACTIVITY_TIMEOUT_MINUTES  Inactivity timeout in minutes (default: 5)")
	fmt.Println("  SOUND_INACTIVITY_POLL_INTERVAL    Idle check interval (default: 5s)")
	fmt.Println("  SOUND_INACTIVITY_LOG_LEVEL        Log level (default: info)")
	fmt.Println("  SOUND_INACTIVITY_CONFIG           Path to config file")
	fmt.Println()
	fmt.Println("Configuration file: ~/.config/sound-inactivity/config.yaml")
}
