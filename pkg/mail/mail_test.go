// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/mock/gomock"

	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
	"github.com/canonical/studio-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package mail -destination ./mock_interfaces.go -source=./interfaces.go

const testFrom = "Studio <no-reply@example.com>"

func newTestMailer(sender SenderInterface) *Mailer {
	logger := logging.NewNoopLogger()
	return NewMailer(sender, testFrom, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestMailer_SendMagicLink(t *testing.T) {
	link := "http://localhost:8080/auth/verify?token=abc"

	testCases := []struct {
		name            string
		signup          bool
		expectedSubject string
		expectedText    string
	}{
		{name: "login", signup: false, expectedSubject: "Your sign-in link", expectedText: "Use the link below to sign in."},
		{name: "signup", signup: true, expectedSubject: "Finish creating your studio", expectedText: "create your studio"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSender := NewMockSenderInterface(ctrl)
			mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, msg *Message) error {
					if msg.To != "a@x.com" || msg.From != testFrom {
						t.Errorf("unexpected envelope %s -> %s", msg.From, msg.To)
					}
					if msg.Subject != tc.expectedSubject {
						t.Errorf("expected subject %q, got %q", tc.expectedSubject, msg.Subject)
					}
					if !strings.Contains(msg.Text, tc.expectedText) || !strings.Contains(msg.Text, link) {
						t.Errorf("unexpected text body %q", msg.Text)
					}
					if !strings.Contains(msg.HTML, `href="http://localhost:8080/auth/verify?token=abc"`) {
						t.Errorf("expected escaped link in html body, got %q", msg.HTML)
					}
					return nil
				},
			)

			if err := newTestMailer(mockSender).SendMagicLink(context.Background(), "a@x.com", link, tc.signup); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestMailer_SendInvitationEscapesHTML(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSender := NewMockSenderInterface(ctrl)
	mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *Message) error {
			if strings.Contains(msg.HTML, "<script>") {
				t.Errorf("html body was not escaped: %q", msg.HTML)
			}
			if !strings.Contains(msg.Text, "Ada invited you to join <script>") {
				t.Errorf("unexpected text body %q", msg.Text)
			}
			return errors.New("smtp down")
		},
	)

	err := newTestMailer(mockSender).SendInvitation(context.Background(), InvitationEmail{
		Email:       "b@y.com",
		TenantName:  "<script>",
		InviterName: "Ada",
		Role:        "member",
		Link:        "http://localhost/auth/invite/accept?token=t",
	})

	if err == nil {
		t.Fatal("expected sender error to propagate")
	}
}

func TestSMTPSender_Send(t *testing.T) {
	logger := logging.NewNoopLogger()
	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p"}, tracing.NewNoopTracer(), logger)

	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotBody string
	)
	s.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotBody = addr, from, to, string(msg)
		if a == nil {
			t.Error("expected smtp auth")
		}
		return nil
	}

	msg := &Message{From: testFrom, To: "a@x.com", Subject: "Hello", Text: "plain", HTML: "<p>rich</p>"}
	if err := s.Send(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAddr != "smtp.example.com:587" {
		t.Errorf("unexpected addr %s", gotAddr)
	}

	if gotFrom != "no-reply@example.com" || len(gotTo) != 1 || gotTo[0] != "a@x.com" {
		t.Errorf("unexpected envelope %s -> %v", gotFrom, gotTo)
	}

	for _, want := range []string{"Subject: Hello", "multipart/alternative", "text/plain", "plain", "text/html", "<p>rich</p>"} {
		if !strings.Contains(gotBody, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
}

func TestSMTPSender_InvalidFrom(t *testing.T) {
	logger := logging.NewNoopLogger()
	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 25}, tracing.NewNoopTracer(), logger)
	s.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be attempted")
		return nil
	}

	if err := s.Send(context.Background(), &Message{From: "not an address", To: "a@x.com"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestAMQPSender_Send(t *testing.T) {
	testCases := []struct {
		name        string
		publishErr  error
		expectedErr bool
	}{
		{name: "published"},
		{name: "broker error", publishErr: errors.New("channel closed"), expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPublisher := NewMockPublisherInterface(ctrl)
			mockPublisher.EXPECT().
				PublishWithContext(gomock.Any(), "", "notifications.email", false, false, gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _ string, _, _ bool, p amqp.Publishing) error {
					var msg Message
					if err := json.Unmarshal(p.Body, &msg); err != nil {
						t.Errorf("failed to decode published body: %v", err)
					}
					if msg.To != "a@x.com" || p.DeliveryMode != amqp.Persistent {
						t.Errorf("unexpected publishing %+v", p)
					}
					return tc.publishErr
				})

			logger := logging.NewNoopLogger()
			s := NewAMQPSender(mockPublisher, "notifications.email", tracing.NewNoopTracer(), logger)

			err := s.Send(context.Background(), &Message{From: testFrom, To: "a@x.com", Subject: "s"})
			if tc.expectedErr != (err != nil) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestLogSender_Send(t *testing.T) {
	if err := NewLogSender(logging.NewNoopLogger()).Send(context.Background(), &Message{To: "a@x.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
