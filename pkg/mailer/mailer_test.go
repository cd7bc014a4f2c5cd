package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/leadcapture/pkg/mailer"
)

func validMessage() mailer.Message {
	return mailer.Message{
		From:     "Launch Notify <onboarding@resend.dev>",
		To:       "ops@example.com",
		Subject:  "New launch signup",
		BodyHTML: "<p>Email: user@example.com</p>",
		ReplyTo:  "user@example.com",
	}
}

func TestMessage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validMessage().Validate())
	})

	tests := []struct {
		name   string
		mutate func(*mailer.Message)
	}{
		{name: "missing from", mutate: func(m *mailer.Message) { m.From = "" }},
		{name: "missing to", mutate: func(m *mailer.Message) { m.To = "" }},
		{name: "missing subject", mutate: func(m *mailer.Message) { m.Subject = "" }},
		{name: "missing body", mutate: func(m *mailer.Message) { m.BodyHTML = "" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := validMessage()
			tt.mutate(&msg)

			err := msg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, mailer.ErrInvalidMessage)
		})
	}

	t.Run("reply-to is optional", func(t *testing.T) {
		t.Parallel()

		msg := validMessage()
		msg.ReplyTo = ""
		assert.NoError(t, msg.Validate())
	})
}

func TestConfig_Missing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  mailer.Config
		want []string
	}{
		{
			name: "resend without key",
			cfg:  mailer.Config{Provider: mailer.ProviderResend},
			want: []string{"RESEND_API_KEY"},
		},
		{
			name: "empty provider defaults to resend",
			cfg:  mailer.Config{},
			want: []string{"RESEND_API_KEY"},
		},
		{
			name: "resend with key",
			cfg:  mailer.Config{Provider: mailer.ProviderResend, ResendAPIKey: "re_123"},
			want: nil,
		},
		{
			name: "postmark without tokens",
			cfg:  mailer.Config{Provider: mailer.ProviderPostmark},
			want: []string{"POSTMARK_SERVER_TOKEN", "POSTMARK_ACCOUNT_TOKEN"},
		},
		{
			name: "postmark with one token",
			cfg:  mailer.Config{Provider: mailer.ProviderPostmark, PostmarkServerToken: "t"},
			want: []string{"POSTMARK_ACCOUNT_TOKEN"},
		},
		{
			name: "dev never needs credentials",
			cfg:  mailer.Config{Provider: mailer.ProviderDev},
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.Missing())
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("known providers", func(t *testing.T) {
		t.Parallel()

		for _, provider := range []string{mailer.ProviderResend, mailer.ProviderPostmark, mailer.ProviderDev, ""} {
			sender, err := mailer.New(mailer.Config{Provider: provider, DevDir: t.TempDir()})
			require.NoError(t, err, "provider %q", provider)
			assert.NotNil(t, sender)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()

		sender, err := mailer.New(mailer.Config{Provider: "carrier-pigeon"})
		require.Error(t, err)
		assert.Nil(t, sender)
		assert.ErrorIs(t, err, mailer.ErrInvalidConfig)
	})
}
