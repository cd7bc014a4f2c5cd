// Package lead implements the lead-submission pipeline: normalize the
// submitted address, fail closed on incomplete configuration, notify the
// operator, and thank the submitter on a best-effort basis.
package lead

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/leadcapture/pkg/logger"
	"github.com/dmitrymomot/leadcapture/pkg/mailer"
)

// Machine-readable error codes for the submission endpoint. The values are
// the wire contract the landing page keys its user-facing messages off, so
// they stay stable even where the names read oddly (RESEND_ERROR covers any
// provider, not just Resend).
const (
	CodeBadJSON       = "BAD_JSON"
	CodeInvalidEmail  = "INVALID_EMAIL"
	CodeMissingEnv    = "MISSING_ENV"
	CodeProviderError = "RESEND_ERROR"
	CodeServerError   = "SERVER_ERROR"
)

const (
	notifySubject    = "New launch signup"
	autoReplySubject = "You're on the list"
	autoReplyBody    = "<p>Thanks for your interest. We'll let you know the moment we launch.</p>"
)

// Result is the pipeline's final answer for one submission.
type Result struct {
	OK     bool
	Status int    // HTTP status the transport should use
	Code   string // machine-readable error code, empty on success
	Detail string // provider detail, set only on a failed gating dispatch
	ID     string // provider-assigned message id, set only on success
}

// Service sequences one submission through validation, configuration check
// and the two dispatches. The sender and configuration are injected so the
// pipeline can be exercised with a recording fake.
type Service struct {
	cfg    Config
	sender mailer.Sender
	log    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger supplies the logger for server-side failure detail.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService creates a submission service.
func NewService(cfg Config, sender mailer.Sender, opts ...Option) *Service {
	s := &Service{
		cfg:    cfg,
		sender: sender,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// submission carries one request through the pipeline.
type submission struct {
	id      string // correlation id tying both dispatches together in logs
	raw     string
	email   string
	receipt mailer.Receipt
}

// stage runs one pipeline step. A non-nil Result stops the run and becomes
// the response.
type stage func(ctx context.Context, sub *submission) *Result

// Submit runs the full pipeline for one raw email string. The gating
// notification send decides the outcome; the auto-reply afterwards cannot
// change it.
func (s *Service) Submit(ctx context.Context, rawEmail string) Result {
	sub := &submission{id: uuid.NewString(), raw: rawEmail}

	for _, run := range []stage{s.validate, s.checkConfig, s.notifyOperator} {
		if res := run(ctx, sub); res != nil {
			return *res
		}
	}
	s.thankSubmitter(ctx, sub)

	return Result{OK: true, Status: http.StatusOK, ID: sub.receipt.ProviderID}
}

func (s *Service) validate(_ context.Context, sub *submission) *Result {
	email, err := NormalizeEmail(sub.raw)
	if err != nil {
		return &Result{Status: http.StatusBadRequest, Code: CodeInvalidEmail}
	}
	sub.email = email
	return nil
}

// checkConfig fails closed before any provider call so the caller never
// gets an ambiguous "maybe it sent" answer. Field names go to the log,
// never into the response.
func (s *Service) checkConfig(ctx context.Context, sub *submission) *Result {
	fields := s.cfg.Missing()
	if len(fields) == 0 {
		return nil
	}
	s.log.ErrorContext(ctx, "submission rejected: configuration incomplete",
		slog.String("submission_id", sub.id),
		slog.Any("missing", fields),
	)
	return &Result{Status: http.StatusInternalServerError, Code: CodeMissingEnv}
}

// notifyOperator is the gating dispatch. ReplyTo carries the submitter's
// address so the operator can answer the lead directly from the inbox.
func (s *Service) notifyOperator(ctx context.Context, sub *submission) *Result {
	receipt, err := s.sender.Send(ctx, mailer.Message{
		From:     s.cfg.From,
		To:       s.cfg.NotifyTo,
		ReplyTo:  sub.email,
		Subject:  notifySubject,
		BodyHTML: fmt.Sprintf("<p>Email: %s</p>", sub.email),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "notification dispatch failed",
			slog.String("submission_id", sub.id),
			logger.Error(err),
		)
		return &Result{Status: http.StatusBadGateway, Code: CodeProviderError, Detail: err.Error()}
	}
	sub.receipt = receipt
	return nil
}

// thankSubmitter is best effort: once the operator holds the lead the
// primary obligation is met, so a failed courtesy reply is logged and
// otherwise ignored.
func (s *Service) thankSubmitter(ctx context.Context, sub *submission) {
	if !s.cfg.AutoReply {
		return
	}
	if _, err := s.sender.Send(ctx, mailer.Message{
		From:     s.cfg.From,
		To:       sub.email,
		Subject:  autoReplySubject,
		BodyHTML: autoReplyBody,
	}); err != nil {
		s.log.WarnContext(ctx, "auto-reply dispatch failed",
			slog.String("submission_id", sub.id),
			logger.Error(err),
		)
	}
}
