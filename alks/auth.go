package alks

import (
	"context"
	"encoding/base64"
	"net/http"
)

// resolveAuth decides how a call authenticates and returns the headers to
// send plus the final payload. The incoming payload is never mutated; the
// returned copy has credential fields stripped whenever an Authorization
// header carries them instead.
func (c *Client) resolveAuth(ctx context.Context, method string, body payload, auth Auth) (map[string]string, payload, error) {
	headers := map[string]string{}
	if body == nil {
		body = payload{}
	}

	if auth.RefreshToken != "" {
		c.debugf("auth", "exchanging refresh token for access token")
		token, err := c.exchangeToken(ctx, body, auth.RefreshToken)
		if err != nil {
			// Propagated unchanged; the outer call never goes out.
			return nil, nil, err
		}
		headers["Authorization"] = "Bearer " + token.AccessToken
		return headers, body.without("token", "password", "userid"), nil
	}

	// GET requests send no body, so inline credentials would be silently
	// dropped; header auth applies regardless of mode.
	if c.config.AuthMode == AuthModeLegacyPassword && method != http.MethodGet {
		return headers, body.merge(payload{
			"userid":   auth.Userid,
			"password": auth.Password,
		}), nil
	}

	basic := base64.StdEncoding.EncodeToString([]byte(auth.Userid + ":" + auth.Password))
	headers["Authorization"] = "Basic " + basic
	return headers, body.without("token", "password", "userid"), nil
}

// RefreshTokenToAccessToken exchanges an opaque refresh token for a
// short-lived access token. The auth resolver runs this exchange as a nested
// pre-step for bearer-authenticated operations; it is also usable directly.
func (c *Client) RefreshTokenToAccessToken(ctx context.Context, refreshToken string) (*AccessToken, error) {
	return c.exchangeToken(ctx, nil, refreshToken)
}

// exchangeToken posts the account fields of the pending call plus the
// refresh token to /accessToken/. Password-style fields never travel with
// the exchange.
func (c *Client) exchangeToken(ctx context.Context, outer payload, refreshToken string) (*AccessToken, error) {
	if outer == nil {
		outer = payload{}
	}
	body := outer.
		merge(payload{"refreshToken": refreshToken}).
		without("token", "password", "userid")

	url := c.endpoint("/accessToken/")
	c.debugPayload("accessToken", url, body)

	resp, err := c.execute(ctx, "POST", url, nil, body)
	if err != nil {
		return nil, err
	}
	raw, cerr := classify(resp)
	if cerr != nil {
		return nil, cerr
	}

	var token AccessToken
	if derr := decode(raw, &token); derr != nil {
		return nil, derr
	}
	if token.AccessToken == "" {
		return nil, &Error{Kind: ErrUpstreamProtocol, Message: "no access token returned"}
	}
	return &token, nil
}
