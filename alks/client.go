// Package alks is a client for the ALKS key-issuance service. It
// authenticates a caller with a password or a refresh token, requests
// temporary or long-term AWS access keys and IAM roles, and derives AWS
// console sign-in URLs from issued session credentials.
//
// Every operation runs the same pipeline: resolve authentication (which may
// itself exchange a refresh token for an access token), build the request
// payload, perform one HTTP call, then classify the response into a typed
// result or a single *Error. The client holds no mutable state across calls
// and is safe for concurrent use. Retry policy is left to the caller.
//
//	client, err := alks.New(alks.Config{BaseURL: "https://alks.example.com/rest"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	key, err := client.CreateKey(ctx, alks.AccountRef{
//	    Account: "012345678910/ALKSAdmin - awsprod",
//	    Role:    "Admin",
//	}, alks.Auth{Userid: "jdoe", Password: pass}, 2)
package alks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/pkg/errors"
)

// Client talks to one ALKS server. Construct with New.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     *log.Logger

	// Overridable for tests; production always uses the AWS endpoints.
	signinURL  string
	consoleURL string
}

// New validates cfg, applies defaults and returns a ready Client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
		httpClient.Timeout = cfg.Timeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
		logger.SetPrefix("alks")
	}
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	return &Client{
		config:     cfg,
		httpClient: httpClient,
		logger:     logger,
		signinURL:  awsSigninURL,
		consoleURL: awsConsoleURL,
	}, nil
}

// BaseURL returns the configured server base URL with any trailing slash
// removed.
func (c *Client) BaseURL() string { return c.config.BaseURL }

func (c *Client) endpoint(path string) string { return c.config.BaseURL + path }

// do runs the full pipeline for an authenticated operation and returns the
// raw body of a successful response for the caller to project.
func (c *Client) do(ctx context.Context, method, path string, body payload, auth Auth) ([]byte, error) {
	headers, body, err := c.resolveAuth(ctx, method, body, auth)
	if err != nil {
		return nil, err
	}

	url := c.endpoint(path)
	c.debugPayload(path, url, body)

	resp, err := c.execute(ctx, method, url, headers, body)
	if err != nil {
		return nil, err
	}

	raw, cerr := classify(resp)
	if cerr != nil {
		return nil, cerr
	}
	return raw, nil
}

// execute performs one HTTP round trip. Transport failures come back as
// *Error with kind ErrTransport; everything else is returned raw for
// classification.
func (c *Client) execute(ctx context.Context, method, url string, headers map[string]string, body payload) (*response, error) {
	var reader io.Reader
	if body != nil && method != http.MethodGet {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, transportError(errors.Wrap(err, "alks: failed to encode request body"))
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, transportError(errors.Wrap(err, "alks: failed to build request"))
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	return &response{status: resp.StatusCode, body: raw}, nil
}

func (c *Client) debugf(section, format string, args ...interface{}) {
	c.logger.Debug(fmt.Sprintf(format, args...), "section", section)
}

// debugPayload logs an outgoing request body. Only the sanitized copy is
// ever handed to the logger, regardless of the debug level.
func (c *Client) debugPayload(section, url string, body payload) {
	if body == nil {
		c.logger.Debug("sending request", "section", section, "endpoint", url)
		return
	}
	c.logger.Debug("sending request", "section", section, "endpoint", url, "payload", body.sanitized())
}
