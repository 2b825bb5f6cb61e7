// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	netmail "net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/tracing"
)

// LogSender writes emails to the log instead of delivering them.
type LogSender struct {
	logger logging.LoggerInterface
}

func (s *LogSender) Send(_ context.Context, msg *Message) error {
	s.logger.Infof("email to %s: %s", msg.To, msg.Subject)
	s.logger.Debugf("email body for %s:\n%s", msg.To, msg.Text)
	return nil
}

func NewLogSender(logger logging.LoggerInterface) *LogSender {
	return &LogSender{logger: logger}
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPSender struct {
	cfg      SMTPConfig
	sendMail sendMailFunc

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	_, span := s.tracer.Start(ctx, "mail.SMTPSender.Send")
	defer span.End()

	from, err := netmail.ParseAddress(msg.From)
	if err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}

	body, err := buildMIME(msg)
	if err != nil {
		return err
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	if err := s.sendMail(addr, auth, from.Address, []string{msg.To}, body); err != nil {
		s.logger.Errorf("failed to send email via %s: %v", addr, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func buildMIME(msg *Message) ([]byte, error) {
	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", msg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", w.Boundary())

	parts := []struct {
		contentType string
		body        string
	}{
		{"text/plain; charset=UTF-8", msg.Text},
		{"text/html; charset=UTF-8", msg.HTML},
	}

	for _, p := range parts {
		pw, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {p.contentType}})
		if err != nil {
			return nil, fmt.Errorf("failed to build email part: %w", err)
		}
		if _, err := pw.Write([]byte(p.body)); err != nil {
			return nil, fmt.Errorf("failed to write email part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close email body: %w", err)
	}

	return buf.Bytes(), nil
}

func NewSMTPSender(cfg SMTPConfig, tracer tracing.TracingInterface, logger logging.LoggerInterface) *SMTPSender {
	s := new(SMTPSender)

	s.cfg = cfg
	s.sendMail = smtp.SendMail

	s.tracer = tracer
	s.logger = logger

	return s
}

// AMQPSender hands emails to a notification worker through a queue.
type AMQPSender struct {
	publisher PublisherInterface
	queue     string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (s *AMQPSender) Send(ctx context.Context, msg *Message) error {
	ctx, span := s.tracer.Start(ctx, "mail.AMQPSender.Send")
	defer span.End()

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode email message: %w", err)
	}

	err = s.publisher.PublishWithContext(
		ctx,
		"",
		s.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Type:         "email",
			Body:         body,
		},
	)
	if err != nil {
		s.logger.Errorf("failed to publish email to %s: %v", s.queue, err)
		return fmt.Errorf("failed to publish email: %w", err)
	}

	return nil
}

func NewAMQPSender(publisher PublisherInterface, queue string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *AMQPSender {
	s := new(AMQPSender)

	s.publisher = publisher
	s.queue = queue

	s.tracer = tracer
	s.logger = logger

	return s
}

// DialAMQP opens a channel and declares the durable email queue.
// The returned close function releases both channel and connection.
func DialAMQP(url, queue string) (*amqp.Channel, func(), error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to open amqp channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	closer := func() {
		_ = ch.Close()
		_ = conn.Close()
	}

	return ch, closer, nil
}
