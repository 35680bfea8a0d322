package alks

import (
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// AuthMode selects how password credentials are presented to the server.
type AuthMode int

const (
	// AuthModeBasic sends userid:password as an Authorization: Basic header.
	// This is the primary path for current servers.
	AuthModeBasic AuthMode = iota

	// AuthModeLegacyPassword embeds userid and password in the request body.
	// Deprecated, kept for servers that predate header authentication. GET
	// requests carry no body and fall back to the Basic header.
	AuthModeLegacyPassword
)

const (
	// DefaultUserAgent is sent on every request unless overridden.
	DefaultUserAgent = "alks-go"

	// DefaultMaxKeyDuration is the client-side ceiling (hours) on session
	// key durations.
	DefaultMaxKeyDuration = 18

	defaultTimeout = 30 * time.Second
)

// Config configures a Client. BaseURL is required; everything else has a
// sensible default.
type Config struct {
	// BaseURL is the ALKS account-management server, e.g.
	// "https://alks.example.com/rest". A trailing slash is tolerated.
	BaseURL string

	// UserAgent overrides DefaultUserAgent.
	UserAgent string

	// AuthMode picks the password authentication style. Bearer auth via a
	// refresh token is independent of this and selected per call by
	// Auth.RefreshToken.
	AuthMode AuthMode

	// MaxKeyDuration caps session durations client-side. Defaults to
	// DefaultMaxKeyDuration. The effective ceiling for an account is the
	// smaller of this and the server-reported maximum (see GetDurations).
	MaxKeyDuration int

	// DeleteRoleViaPOST sends role deletion as POST instead of DELETE for
	// older server revisions.
	DeleteRoleViaPOST bool

	// Debug enables diagnostic logging. Payload fields holding secrets are
	// masked before they ever reach the logger.
	Debug bool

	// Logger receives debug output. Defaults to a stderr logger.
	Logger *log.Logger

	// HTTPClient overrides the default pooled client. Supply one to control
	// TLS, proxies or timeouts beyond Timeout.
	HTTPClient *http.Client

	// Timeout applies to the default client when HTTPClient is nil.
	Timeout time.Duration
}

// Validate reports whether the config is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("alks: BaseURL is required")
	}
	if c.MaxKeyDuration < 0 {
		return errors.New("alks: MaxKeyDuration cannot be negative")
	}
	if c.Timeout < 0 {
		return errors.New("alks: Timeout cannot be negative")
	}
	return nil
}

func (c Config) withDefaults() Config {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.MaxKeyDuration == 0 {
		c.MaxKeyDuration = DefaultMaxKeyDuration
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	return c
}
