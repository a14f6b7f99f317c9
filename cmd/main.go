package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"IcingaMattermostBot/internal/adapter/cli"
	"IcingaMattermostBot/internal/app"
	"IcingaMattermostBot/internal/config"
	"IcingaMattermostBot/internal/logging"
	"IcingaMattermostBot/internal/repo"

	"github.com/go-logr/logr"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logr.Discard()
	newNotifier := func(cfg *config.Config) (app.AlertNotifier, error) {
		l, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
		if err != nil {
			return nil, err
		}
		log = l

		sender, err := repo.NewSender(cfg, os.Stdout, log)
		if err != nil {
			return nil, err
		}
		log.V(1).Info("Using sink", "sink", cfg.EffectiveSink())
		return app.NewAlertUseCase(sender, log), nil
	}

	cmd := cli.NewAlertCommand(config.New(), newNotifier)
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Error(err, "Notification failed")
		stop()
		os.Exit(1)
	}
}
