// payment-emulator публикует подтвержденные платежи в kafka для локальной разработки и нагрузки.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	stdlog "log"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"foodhub/pkg/logger"
	"foodhub/pkg/logger/zap_adapter"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

type paymentConfirmed struct {
	PaymentID      string  `json:"payment_id"`
	CustomerID     int64   `json:"customer_id"`
	RestaurantID   int64   `json:"restaurant_id"`
	TotalAmount    float64 `json:"total_amount"`
	DropOff        point   `json:"drop_off"`
	DropOffAddress string  `json:"drop_off_address"`
}

type point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func main() {
	brokers := flag.String("brokers", envOr("KAFKA_BROKERS", "localhost:9092"), "comma separated kafka brokers")
	topic := flag.String("topic", envOr("KAFKA_TOPIC", "payment.confirmed"), "payments topic")
	interval := flag.Duration("interval", time.Second, "pause between payments")
	restaurants := flag.Int64("restaurants", 3, "restaurant ids are drawn from 1..N")
	duplicates := flag.Float64("duplicates", 0.1, "share of payments sent twice")
	flag.Parse()

	log, err := zap_adapter.NewZapAdapter(envOr("LOG_LEVEL", "info"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(strings.Split(*brokers, ","), cfg)
	if err != nil {
		log.Error("create kafka producer", logger.ErrorField(err))
		return
	}
	defer func() {
		if err := producer.Close(); err != nil {
			log.Error("close kafka producer", logger.ErrorField(err))
		}
	}()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("payment emulator stopped")
			return
		case <-ticker.C:
			payment := randomPayment(*restaurants)
			sends := 1
			if rand.Float64() < *duplicates {
				sends = 2 // повтор того же платежа не должен создать второй заказ
			}
			for range sends {
				if err := send(producer, *topic, payment); err != nil {
					log.Error("send payment", logger.NewField("payment_id", payment.PaymentID), logger.ErrorField(err))
					continue
				}
				log.Info("payment sent",
					logger.NewField("payment_id", payment.PaymentID),
					logger.NewField("restaurant_id", payment.RestaurantID),
				)
			}
		}
	}
}

func randomPayment(restaurants int64) paymentConfirmed {
	return paymentConfirmed{
		PaymentID:    uuid.NewString(),
		CustomerID:   1 + rand.Int64N(1000),
		RestaurantID: 1 + rand.Int64N(max(restaurants, 1)),
		TotalAmount:  float64(500+rand.IntN(5000)) / 100,
		DropOff: point{
			Lat: 55.70 + rand.Float64()*0.1,
			Lng: 37.55 + rand.Float64()*0.1,
		},
		DropOffAddress: fmt.Sprintf("Test street %d", 1+rand.IntN(200)),
	}
}

func send(producer sarama.SyncProducer, topic string, payment paymentConfirmed) error {
	value, err := json.Marshal(payment)
	if err != nil {
		return fmt.Errorf("encode payment: %w", err)
	}
	_, _, err = producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(payment.PaymentID),
		Value: sarama.ByteEncoder(value),
	})
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
