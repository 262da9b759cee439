package events

import (
	"context"

	"lodge/config"
	"lodge/infras/kafka"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer runs the background handlers for the topics the API publishes to.
type Consumer struct {
	cfg   *config.Config
	kafka kafka.Client
}

func NewConsumer(cfg *config.Config, kafkaClient kafka.Client) *Consumer {
	return &Consumer{
		cfg:   cfg,
		kafka: kafkaClient,
	}
}

// Run blocks consuming both topics until the context is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	go c.kafka.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.BookingCreated, c.handleBookingCreated)

	c.kafka.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.ImageResize, c.handleImageResize)
}

func (c *Consumer) handleBookingCreated(msg kafkaGo.Message) {
	decoded, err := kafka.DecodeKafkaMessage[BookingCreatedEvent](msg)
	if err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("failed to decode booking created event")

		return
	}

	event, ok := decoded.Value.(BookingCreatedEvent)
	if !ok {
		log.Error().Str("key", decoded.Key).Msg("unexpected booking created payload type")

		return
	}

	log.Info().
		Str("bookingID", event.BookingID).
		Str("roomID", event.RoomID).
		Str("userID", event.UserID).
		Str("dateFrom", event.DateFrom).
		Str("dateTo", event.DateTo).
		Float64("totalCost", event.TotalCost).
		Msg("booking created event processed")
}

func (c *Consumer) handleImageResize(msg kafkaGo.Message) {
	decoded, err := kafka.DecodeKafkaMessage[ImageResizeEvent](msg)
	if err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("failed to decode image resize event")

		return
	}

	event, ok := decoded.Value.(ImageResizeEvent)
	if !ok {
		log.Error().Str("key", decoded.Key).Msg("unexpected image resize payload type")

		return
	}

	log.Info().
		Str("objectName", event.ObjectName).
		Str("entity", event.Entity).
		Str("url", event.URL).
		Msg("image resize event processed")
}
