package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
)

type Notification struct {
	To      string
	Subject string
	Body    string
}

// Notifier delivers a notification to a single recipient.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

type GmailNotifier struct {
	GmailClient *gmail.Service
	From        string
}

func NewGmailNotifier(client *gmail.Service, from string) *GmailNotifier {
	return &GmailNotifier{GmailClient: client, From: from}
}

func (g *GmailNotifier) Send(ctx context.Context, n Notification) error {
	msg := &gmail.Message{Raw: buildRawMessage(g.From, n)}
	if _, err := g.GmailClient.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail send to %s: %w", n.To, err)
	}
	return nil
}

// buildRawMessage renders an RFC 2822 message, base64url encoded as the
// Gmail API expects.
func buildRawMessage(from string, n Notification) string {
	var b strings.Builder
	if from != "" {
		fmt.Fprintf(&b, "From: %s\r\n", stripLineBreaks(from))
	}
	fmt.Fprintf(&b, "To: %s\r\n", stripLineBreaks(n.To))
	// Q-encoding turns CR/LF and non-ASCII into an encoded-word, so a
	// subject can never start a new header line.
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", n.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(n.Body)
	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

func stripLineBreaks(s string) string {
	return lineBreaks.Replace(s)
}

// IsRetryableSendError reports false for Gmail client errors that will not
// succeed on retry; rate limiting is still retried.
func IsRetryableSendError(err error) bool {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		if gErr.Code == http.StatusTooManyRequests {
			return true
		}
		return gErr.Code < 400 || gErr.Code >= 500
	}
	return true
}

type LogNotifier struct {
	logger *log.Logger
}

// NewLogNotifier is used when Gmail is not configured.
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(_ context.Context, notif Notification) error {
	n.logger.Printf("[NOTIFICATION] to=%s subject=%q body=%q at=%s",
		notif.To, notif.Subject, notif.Body, time.Now().Format(time.RFC3339))
	return nil
}

func statusChangedNotification(to, jobTitle, company, status string) Notification {
	subject := fmt.Sprintf("Update on your application: %s", jobTitle)
	body := fmt.Sprintf("Hello,\n\nYour application for %s at %s is now %s.\n\nJob Platform", jobTitle, company, status)
	return Notification{To: to, Subject: subject, Body: body}
}
