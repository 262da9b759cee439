package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/internal/events"
	"lodge/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		<-sigCh

		log.Info().Msg("Received shutdown signal, stopping consumers")

		cancel()
	}()

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Starting up worker.")

	consumer := events.NewConsumer(cfg, kafka.New(cfg))
	consumer.Run(ctx)
}
