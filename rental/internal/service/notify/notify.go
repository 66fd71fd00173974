package notify

import (
	"context"
	"time"

	"github.com/Astemirdum/movie-rental/rental/internal/model"
	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type OverdueNotice struct {
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Kafka publishes one OverdueNotice per call, keyed by username so notices
// for a customer stay on one partition.
type Kafka struct {
	producer sarama.SyncProducer
	topic    string
	now      func() time.Time
	log      *zap.Logger
}

func NewKafka(producer sarama.SyncProducer, topic string, log *zap.Logger) *Kafka {
	return &Kafka{
		producer: producer,
		topic:    topic,
		now:      time.Now,
		log:      log.Named("notify"),
	}
}

func (k *Kafka) NotifyOverdue(_ context.Context, customer model.Customer) error {
	data, err := json.Marshal(OverdueNotice{
		Username:  customer.Username,
		Email:     customer.Email,
		Timestamp: k.now().UTC(),
	})
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(customer.Username),
		Value: sarama.ByteEncoder(data),
	}
	partition, offset, err := k.producer.SendMessage(msg)
	if err != nil {
		return errors.Wrap(err, "send overdue notice")
	}
	k.log.Debug("overdue notice sent",
		zap.String("username", customer.Username),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

func (k *Kafka) Close() error {
	return k.producer.Close()
}

// Log only writes the notice to the log. Used when no broker is configured.
type Log struct {
	log *zap.Logger
}

func NewLog(log *zap.Logger) *Log {
	return &Log{log: log.Named("notify")}
}

func (l *Log) NotifyOverdue(_ context.Context, customer model.Customer) error {
	l.log.Info("rental overdue", zap.String("username", customer.Username), zap.String("email", customer.Email))
	return nil
}
