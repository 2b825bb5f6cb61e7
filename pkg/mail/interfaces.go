// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

type MailerInterface interface {
	SendMagicLink(ctx context.Context, email, link string, signup bool) error
	SendInvitation(ctx context.Context, invite InvitationEmail) error
}

type SenderInterface interface {
	Send(ctx context.Context, msg *Message) error
}

// PublisherInterface is the subset of *amqp.Channel used by the AMQP sender.
type PublisherInterface interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}
