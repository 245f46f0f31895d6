package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"fitclub/internal/logger"
	"fitclub/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey       = "emails"
	failedQueueKey = "emails:failed"
	maxTries       = 3
)

type EmailJob struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Options struct {
	From      string
	FromName  string
	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	RedisAddr string
}

// Service queues outgoing mail in Redis and delivers it over SMTP from a
// background worker started with Start.
type Service struct {
	redis      *redis.Client
	opts       Options
	retryDelay time.Duration
	deliver    func(EmailJob) error
}

func New(opts Options) *Service {
	return newService(redis.NewClient(&redis.Options{Addr: opts.RedisAddr}), opts)
}

func newService(rdb *redis.Client, opts Options) *Service {
	s := &Service{
		redis:      rdb,
		opts:       opts,
		retryDelay: 5 * time.Second,
	}
	s.deliver = s.sendSMTP
	return s
}

func (s *Service) Send(ctx context.Context, emailType, to, name, subject, body string) error {
	job := EmailJob{
		Type:    emailType,
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal email job: %w", err)
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		metrics.RecordEmail(emailType, "failed")
		return fmt.Errorf("queue email to %s: %w", to, err)
	}

	metrics.RecordEmail(emailType, "queued")
	logger.Info("email queued", "type", emailType, "to", to)
	return nil
}

// Start consumes the queue until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("bad email job: %v", err)
		return
	}

	job.Tries++
	logger.Debugf("delivering %s email to %s (attempt %d)", job.Type, job.To, job.Tries)
	if err := s.deliver(job); err != nil {
		logger.WithError(err).Warn("email delivery failed", "to", job.To, "attempt", job.Tries)

		if job.Tries < maxTries {
			s.requeue(ctx, job)
		} else {
			metrics.RecordEmail(job.Type, "failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Info("email sent", "type", job.Type, "to", job.To)
}

func (s *Service) requeue(ctx context.Context, job EmailJob) {
	select {
	case <-ctx.Done():
	case <-time.After(s.retryDelay):
	}

	data, _ := json.Marshal(job)
	if err := s.redis.LPush(context.Background(), queueKey, string(data)).Err(); err != nil {
		logger.WithError(err).Error("email requeue failed", "to", job.To)
	}
}

func (s *Service) sendSMTP(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.opts.FromName, s.opts.From)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.opts.SMTPUser != "" && s.opts.SMTPPass != "" {
		auth = smtp.PlainAuth("", s.opts.SMTPUser, s.opts.SMTPPass, s.opts.SMTPHost)
	}

	addr := s.opts.SMTPHost + ":" + s.opts.SMTPPort
	return smtp.SendMail(addr, auth, s.opts.From, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedQueueKey, string(data))
	logger.Error("email moved to failed queue", "to", job.To, "tries", job.Tries)
}

// QueueLength reports pending jobs and publishes the gauge.
func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.SetEmailQueueLength(length)
	return length
}

func (s *Service) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

func (s *Service) Close() error {
	return s.redis.Close()
}

// SendBookingConfirmation tells a member about a session or class seat.
func (s *Service) SendBookingConfirmation(ctx context.Context, email, name, bookingType, details string, when time.Time) error {
	subject := "Booking Confirmed - " + bookingType
	body := fmt.Sprintf(`Hi %s,

Your booking is confirmed!

Type: %s
Details: %s
Time: %s

See you at the club!

- %s`, name, bookingType, details, when.Format("Jan 2, 2006 at 3:04 PM"), s.signature())

	return s.Send(ctx, "booking_confirmation", email, name, subject, body)
}

func (s *Service) signature() string {
	if s.opts.FromName == "" {
		return "FitClub Team"
	}
	return s.opts.FromName
}
