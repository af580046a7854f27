//go:build unit

package mail

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"stadium-scheduler/internal/pkg/config"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMailConfig() config.MailConfig {
	return config.NewTestConfig().Mail
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func encodeJob(t *testing.T, job Job) string {
	t.Helper()
	data, err := json.Marshal(job)
	require.NoError(t, err)
	return string(data)
}

type recordedMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestDispatcher(rdb *redis.Client, sendErr error, sent *[]recordedMail) *Dispatcher {
	return NewDispatcher(rdb, testMailConfig(), discardLogger()).
		WithRetryDelay(0).
		WithSender(func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			*sent = append(*sent, recordedMail{addr: addr, from: from, to: to, msg: string(msg)})
			return sendErr
		})
}

func TestQueueNotifier_SendNotification(t *testing.T) {
	cfg := testMailConfig()

	t.Run("job is pushed on the queue", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.Regexp().ExpectLPush(cfg.QueueKey, `"to":"fan@example.com"`).SetVal(1)

		n := NewQueueNotifier(db, cfg, discardLogger())
		err := n.SendNotification(context.Background(), "fan@example.com", "subject", "body")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error is returned", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.Regexp().ExpectLPush(cfg.QueueKey, `.*`).SetErr(assert.AnError)

		n := NewQueueNotifier(db, cfg, discardLogger())
		err := n.SendNotification(context.Background(), "fan@example.com", "subject", "body")

		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDispatcher_ProcessNext(t *testing.T) {
	cfg := testMailConfig()
	job := Job{To: "fan@example.com", Subject: "A slot just opened", Body: "hello", Created: time.Now()}

	t.Run("delivers the job", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectBRPop(popTimeout, cfg.QueueKey).SetVal([]string{cfg.QueueKey, encodeJob(t, job)})

		var sent []recordedMail
		d := newTestDispatcher(db, nil, &sent)

		assert.True(t, d.ProcessNext(context.Background()))
		require.Len(t, sent, 1)
		assert.Equal(t, cfg.SMTPHost+":"+cfg.SMTPPort, sent[0].addr)
		assert.Equal(t, cfg.From, sent[0].from)
		assert.Equal(t, []string{"fan@example.com"}, sent[0].to)
		assert.True(t, strings.Contains(sent[0].msg, "Subject: A slot just opened\r\n"))
		assert.True(t, strings.HasSuffix(sent[0].msg, "\r\nhello"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("line breaks in the subject stay in the subject", func(t *testing.T) {
		injected := job
		injected.Subject = "Kanto United\r\nBcc: everyone@example.com"

		db, mock := redismock.NewClientMock()
		mock.ExpectBRPop(popTimeout, cfg.QueueKey).SetVal([]string{cfg.QueueKey, encodeJob(t, injected)})

		var sent []recordedMail
		d := newTestDispatcher(db, nil, &sent)

		assert.True(t, d.ProcessNext(context.Background()))
		require.Len(t, sent, 1)
		assert.NotContains(t, sent[0].msg, "\r\nBcc:")
		assert.Contains(t, sent[0].msg, "Subject: Kanto United Bcc: everyone@example.com\r\n")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-ASCII subject is encoded", func(t *testing.T) {
		jp := job
		jp.Subject = "関東ユナイテッド"

		db, mock := redismock.NewClientMock()
		mock.ExpectBRPop(popTimeout, cfg.QueueKey).SetVal([]string{cfg.QueueKey, encodeJob(t, jp)})

		var sent []recordedMail
		d := newTestDispatcher(db, nil, &sent)

		assert.True(t, d.ProcessNext(context.Background()))
		require.Len(t, sent, 1)
		assert.Contains(t, sent[0].msg, "Subject: =?UTF-8?q?")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid recipient is parked without sending", func(t *testing.T) {
		bad := job
		bad.To = "fan@example.com\r\nBcc: everyone@example.com"

		db, mock := redismock.NewClientMock()
		mock.ExpectBRPop(popTimeout, cfg.QueueKey).SetVal([]string{cfg.QueueKey, encodeJob(t, bad)})
		mock.Regexp().ExpectLPush(FailedKey(cfg.QueueKey), `invalid recipient`).SetVal(1)

		var sent []recordedMail
		d := newTestDispatcher(db, nil, &sent)

		assert.True(t, d.ProcessNext(context.Background()))
		assert.Empty(t, sent)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed delivery is requeued", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectBRPop(popTimeout, cfg.QueueKey).SetVal([]string{cfg.QueueKey, encodeJob(t, job)})
		mock.Regexp().ExpectLPush(cfg.QueueKey, `"tries":1`).SetVal(1)

		var sent []recordedMail
		d := newTestDispatcher(db, assert.AnError, &sent)

		assert.True(t, d.ProcessNext(context.Background()))
		assert.Len(t, sent, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("last attempt parks the job", func(t *testing.T) {
		exhausted := job
		exhausted.Tries = cfg.MaxAttempts - 1

		db, mock := redismock.NewClientMock()
		mock.ExpectBRPop(popTimeout, cfg.QueueKey).SetVal([]string{cfg.QueueKey, encodeJob(t, exhausted)})
		mock.Regexp().ExpectLPush(FailedKey(cfg.QueueKey), `"error":`).SetVal(1)

		var sent []recordedMail
		d := newTestDispatcher(db, assert.AnError, &sent)

		assert.True(t, d.ProcessNext(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed job is dropped", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectBRPop(popTimeout, cfg.QueueKey).SetVal([]string{cfg.QueueKey, "{not json"})

		var sent []recordedMail
		d := newTestDispatcher(db, nil, &sent)

		assert.True(t, d.ProcessNext(context.Background()))
		assert.Empty(t, sent)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty queue", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectBRPop(popTimeout, cfg.QueueKey).SetErr(redis.Nil)

		var sent []recordedMail
		d := newTestDispatcher(db, nil, &sent)

		assert.False(t, d.ProcessNext(context.Background()))
		assert.Empty(t, sent)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDispatcher_Throttle(t *testing.T) {
	cfg := testMailConfig()
	cfg.SendRate = 0.0001
	job := Job{To: "fan@example.com", Subject: "s", Body: "b"}

	db, mock := redismock.NewClientMock()
	mock.ExpectBRPop(popTimeout, cfg.QueueKey).SetVal([]string{cfg.QueueKey, encodeJob(t, job)})
	mock.ExpectBRPop(popTimeout, cfg.QueueKey).SetVal([]string{cfg.QueueKey, encodeJob(t, job)})
	mock.Regexp().ExpectLPush(cfg.QueueKey, `"to":"fan@example.com"`).SetVal(1)

	var sent []recordedMail
	d := NewDispatcher(db, cfg, discardLogger()).
		WithRetryDelay(0).
		WithSender(func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			sent = append(sent, recordedMail{addr: addr, from: from, to: to, msg: string(msg)})
			return nil
		})

	// the deadline is shorter than the next token, so Wait fails fast
	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	assert.True(t, d.ProcessNext(ctx), "first send uses the burst token")
	assert.True(t, d.ProcessNext(ctx), "second job is handed back")
	assert.Len(t, sent, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
