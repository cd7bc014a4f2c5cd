package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements Sender for local development. Instead of calling a
// provider it writes each message to a directory as an HTML file plus a JSON
// metadata file, so the form can be exercised without any credentials.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender that saves messages to dir.
// The directory is created on first send.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

// messageMetadata is the message envelope saved next to the HTML body.
type messageMetadata struct {
	Timestamp string `json:"timestamp"`
	From      string `json:"from"`
	To        string `json:"to"`
	ReplyTo   string `json:"reply_to,omitempty"`
	Subject   string `json:"subject"`
}

// Send writes the message to disk. The base filename doubles as the
// receipt's provider id so logs line up with files.
func (s *DevSender) Send(_ context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return Receipt{}, errors.Join(ErrProviderUnreachable, err)
	}

	now := time.Now()
	name := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405.000"), sanitizeFilename(msg.Subject))

	htmlPath := filepath.Join(s.dir, name+".html")
	if err := os.WriteFile(htmlPath, []byte(msg.BodyHTML), 0644); err != nil {
		return Receipt{}, errors.Join(ErrProviderUnreachable, err)
	}

	meta, err := json.MarshalIndent(messageMetadata{
		Timestamp: now.Format(time.RFC3339),
		From:      msg.From,
		To:        msg.To,
		ReplyTo:   msg.ReplyTo,
		Subject:   msg.Subject,
	}, "", "  ")
	if err != nil {
		return Receipt{}, errors.Join(ErrProviderRejected, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name+".json"), meta, 0644); err != nil {
		return Receipt{}, errors.Join(ErrProviderUnreachable, err)
	}

	return Receipt{ProviderID: name}, nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename turns a subject line into a safe filename fragment.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 80
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "message"
	}
	return strings.ToLower(s)
}
