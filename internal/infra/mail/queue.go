package mail

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"stadium-scheduler/internal/pkg/config"
	"stadium-scheduler/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

type Job struct {
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type failedJob struct {
	Job    Job       `json:"job"`
	Error  string    `json:"error"`
	Failed time.Time `json:"failed"`
}

func FailedKey(queueKey string) string {
	return queueKey + ":failed"
}

// QueueNotifier enqueues notifications on a Redis list for the Dispatcher.
type QueueNotifier struct {
	redis  *redis.Client
	key    string
	logger *slog.Logger
	now    func() time.Time
}

func NewQueueNotifier(rdb *redis.Client, cfg config.MailConfig, logger *slog.Logger) *QueueNotifier {
	return &QueueNotifier{
		redis:  rdb,
		key:    cfg.QueueKey,
		logger: logger,
		now:    time.Now,
	}
}

func (n *QueueNotifier) SendNotification(ctx context.Context, to, subject, body string) error {
	job := Job{
		To:      to,
		Subject: subject,
		Body:    body,
		Created: n.now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		return errs.Wrap(err, "failed to marshal mail job")
	}

	if err := n.redis.LPush(ctx, n.key, string(data)).Err(); err != nil {
		return errs.Wrapf(err, "failed to queue mail to %s", to)
	}

	n.logger.Debug("mail queued", "to", to, "subject", subject)
	return nil
}
