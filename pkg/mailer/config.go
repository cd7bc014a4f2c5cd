package mailer

import "fmt"

// Supported provider names for Config.Provider.
const (
	ProviderResend   = "resend"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

// Config selects and configures the outbound email provider.
// Credentials are deliberately not marked required: the submission service
// gates every dispatch on Missing() at request time, so a server without
// credentials still starts and answers with a definite failure.
type Config struct {
	Provider             string `env:"EMAIL_PROVIDER" envDefault:"resend"`
	ResendAPIKey         string `env:"RESEND_API_KEY"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:"./outbox"`
}

// Missing returns the names of environment variables the selected provider
// needs but that are unset. The dev provider needs none.
func (c Config) Missing() []string {
	var fields []string
	switch c.Provider {
	case ProviderResend, "":
		if c.ResendAPIKey == "" {
			fields = append(fields, "RESEND_API_KEY")
		}
	case ProviderPostmark:
		if c.PostmarkServerToken == "" {
			fields = append(fields, "POSTMARK_SERVER_TOKEN")
		}
		if c.PostmarkAccountToken == "" {
			fields = append(fields, "POSTMARK_ACCOUNT_TOKEN")
		}
	}
	return fields
}

// New builds the Sender for the configured provider.
// Unknown provider names fail fast with ErrInvalidConfig.
func New(cfg Config) (Sender, error) {
	switch cfg.Provider {
	case ProviderResend, "":
		return NewResendSender(cfg.ResendAPIKey), nil
	case ProviderPostmark:
		return NewPostmarkSender(cfg.PostmarkServerToken, cfg.PostmarkAccountToken), nil
	case ProviderDev:
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}
