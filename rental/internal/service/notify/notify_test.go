package notify

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/movie-rental/rental/internal/model"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestKafka_NotifyOverdue(t *testing.T) {
	t.Parallel()
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	at := time.Date(2024, time.March, 6, 10, 0, 0, 0, time.UTC)

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "rental.overdue" {
			return errors.Errorf("topic %q", msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "Test Max" {
			return errors.Errorf("key %q", key)
		}
		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var notice OverdueNotice
		if err := json.Unmarshal(value, &notice); err != nil {
			return err
		}
		if notice.Username != "Test Max" || notice.Email != "max@example.com" || !notice.Timestamp.Equal(at) {
			return errors.Errorf("notice %+v", notice)
		}
		return nil
	})

	k := NewKafka(producer, "rental.overdue", zap.NewNop())
	k.now = func() time.Time { return at }

	err := k.NotifyOverdue(context.Background(), model.Customer{Username: "Test Max", Email: "max@example.com"})
	require.NoError(t, err)
	require.NoError(t, k.Close())
}

func TestKafka_NotifyOverdue_SendError(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	k := NewKafka(producer, "rental.overdue", zap.NewNop())
	err := k.NotifyOverdue(context.Background(), model.Customer{Username: "u"})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, k.Close())
}

func TestLog_NotifyOverdue(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.InfoLevel)
	l := NewLog(zap.New(core))

	require.NoError(t, l.NotifyOverdue(context.Background(), model.Customer{Username: "u", Email: "u@example.com"}))
	entries := logs.FilterMessage("rental overdue").All()
	require.Len(t, entries, 1)
	require.Equal(t, "u", entries[0].ContextMap()["username"])
}
