// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"

	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
	"github.com/canonical/studio-service/internal/tracing"
)

type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

type InvitationEmail struct {
	Email       string
	TenantName  string
	InviterName string
	Role        string
	Link        string
}

type Mailer struct {
	sender SenderInterface
	from   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Mailer) SendMagicLink(ctx context.Context, email, link string, signup bool) error {
	ctx, span := m.tracer.Start(ctx, "mail.Mailer.SendMagicLink")
	defer span.End()

	subject := "Your sign-in link"
	if signup {
		subject = "Finish creating your studio"
	}

	msg, err := m.render(email, subject, magicLinkTemplates, magicLinkData{Link: link, Signup: signup})
	if err != nil {
		return err
	}

	return m.sender.Send(ctx, msg)
}

func (m *Mailer) SendInvitation(ctx context.Context, invite InvitationEmail) error {
	ctx, span := m.tracer.Start(ctx, "mail.Mailer.SendInvitation")
	defer span.End()

	subject := fmt.Sprintf("You have been invited to join %s", invite.TenantName)

	msg, err := m.render(invite.Email, subject, invitationTemplates, invite)
	if err != nil {
		return err
	}

	return m.sender.Send(ctx, msg)
}

func (m *Mailer) render(to, subject string, t templatePair, data any) (*Message, error) {
	text, html, err := t.execute(data)
	if err != nil {
		return nil, fmt.Errorf("failed to render %q email: %w", subject, err)
	}

	return &Message{
		From:    m.from,
		To:      to,
		Subject: subject,
		Text:    text,
		HTML:    html,
	}, nil
}

func NewMailer(sender SenderInterface, from string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Mailer {
	m := new(Mailer)

	m.sender = sender
	m.from = from

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
