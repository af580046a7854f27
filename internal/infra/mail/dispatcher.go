package mail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	netmail "net/mail"
	"net/smtp"
	"strings"
	"time"

	"stadium-scheduler/internal/pkg/config"
	"stadium-scheduler/internal/pkg/errs"
	"stadium-scheduler/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	popTimeout        = 2 * time.Second
	defaultRetryDelay = 5 * time.Second
)

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Dispatcher drains the mail queue and delivers over SMTP.
type Dispatcher struct {
	redis       *redis.Client
	cfg         config.MailConfig
	send        SendFunc
	retryDelay  time.Duration
	limiter     *rate.Limiter
	logger      *slog.Logger
	maxAttempts int
}

func NewDispatcher(rdb *redis.Client, cfg config.MailConfig, logger *slog.Logger) *Dispatcher {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	limit := rate.Inf
	if cfg.SendRate > 0 {
		limit = rate.Limit(cfg.SendRate)
	}
	return &Dispatcher{
		redis:       rdb,
		cfg:         cfg,
		send:        smtp.SendMail,
		retryDelay:  defaultRetryDelay,
		limiter:     rate.NewLimiter(limit, 1),
		logger:      logger,
		maxAttempts: maxAttempts,
	}
}

func (d *Dispatcher) WithSender(send SendFunc) *Dispatcher {
	d.send = send
	return d
}

func (d *Dispatcher) WithRetryDelay(delay time.Duration) *Dispatcher {
	d.retryDelay = delay
	return d
}

func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("mail dispatcher started", "queue", d.cfg.QueueKey)
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("mail dispatcher stopped")
			return
		default:
			d.ProcessNext(ctx)
		}
	}
}

// ProcessNext handles at most one job. It reports whether a job was popped.
func (d *Dispatcher) ProcessNext(ctx context.Context) bool {
	result, err := d.redis.BRPop(ctx, popTimeout, d.cfg.QueueKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			d.logger.Warn("failed to pop mail job", "error", err.Error())
			// redis is unreachable; do not spin
			select {
			case <-ctx.Done():
			case <-time.After(popTimeout):
			}
		}
		return false
	}
	if len(result) < 2 {
		return false
	}

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		d.logger.Error("dropping malformed mail job", "error", err.Error())
		return true
	}

	// retrying cannot fix a bad address
	if _, err := netmail.ParseAddress(job.To); err != nil {
		d.park(ctx, job, errs.Wrapf(err, "invalid recipient %q", job.To))
		return true
	}

	if err := d.limiter.Wait(ctx); err != nil {
		// shutting down before our turn; the attempt is not spent
		d.requeue(ctx, job)
		return true
	}

	job.Tries++
	if err := d.deliver(job); err != nil {
		d.handleFailure(ctx, job, err)
		return true
	}

	metrics.RecordMailDelivery(metrics.DeliverySent)
	d.logger.Info("mail sent", "to", job.To, "attempt", job.Tries)
	return true
}

func (d *Dispatcher) deliver(job Job) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", headerValue(d.cfg.FromName), d.cfg.From)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", headerValue(job.Subject))
	message += "MIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n"
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if d.cfg.SMTPUser != "" && d.cfg.SMTPPassword != "" {
		auth = smtp.PlainAuth("", d.cfg.SMTPUser, d.cfg.SMTPPassword, d.cfg.SMTPHost)
	}

	addr := d.cfg.SMTPHost + ":" + d.cfg.SMTPPort
	return d.send(addr, auth, d.cfg.From, []string{job.To}, []byte(message))
}

// ctx may already be done; requeue anyway so the job survives shutdown
func (d *Dispatcher) requeue(ctx context.Context, job Job) {
	data, _ := json.Marshal(job)
	if err := d.redis.LPush(context.WithoutCancel(ctx), d.cfg.QueueKey, string(data)).Err(); err != nil {
		d.logger.Error("failed to requeue mail job", "to", job.To, "error", err.Error())
	}
}

func (d *Dispatcher) handleFailure(ctx context.Context, job Job, sendErr error) {
	d.logger.Warn("mail delivery failed", "to", job.To, "attempt", job.Tries, "error", sendErr.Error())

	if job.Tries < d.maxAttempts {
		metrics.RecordMailDelivery(metrics.DeliveryRetried)
		if d.retryDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(d.retryDelay):
			}
		}
		d.requeue(ctx, job)
		return
	}

	d.park(ctx, job, sendErr)
}

func (d *Dispatcher) park(ctx context.Context, job Job, sendErr error) {
	metrics.RecordMailDelivery(metrics.DeliveryParked)
	data, _ := json.Marshal(failedJob{Job: job, Error: sendErr.Error(), Failed: time.Now()})
	if err := d.redis.LPush(context.WithoutCancel(ctx), FailedKey(d.cfg.QueueKey), string(data)).Err(); err != nil {
		d.logger.Error("failed to park mail job", "to", job.To, "error", err.Error())
		return
	}
	d.logger.Error("mail moved to failed queue", "to", job.To, "attempts", job.Tries)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// headerValue flattens v onto one line and RFC 2047 encodes anything non-ASCII.
func headerValue(v string) string {
	return mime.QEncoding.Encode("UTF-8", lineBreaks.Replace(v))
}
