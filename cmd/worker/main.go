package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/skyway-app/skyway/config"
	"github.com/skyway-app/skyway/internal/email"
	"github.com/skyway-app/skyway/internal/kafka"
	"github.com/skyway-app/skyway/internal/logging"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	logger, err := logging.New(os.Getenv("APP_ENV") == "production")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatalw("load config", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(logger)

	logger.Infow("worker consuming ticket notifications", "topic", cfg.Kafka.NotificationsTopic)
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.TicketEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Warnw("decode ticket event", "err", err)
			return nil
		}
		return sender.Send(ctx, event)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorw("consumer stopped", "err", err)
	}
}
