package alks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

const (
	awsSigninURL  = "https://signin.aws.amazon.com/federation"
	awsConsoleURL = "https://console.aws.amazon.com/"
)

// GenerateConsoleURL exchanges an issued session key for an AWS console
// sign-in URL via the federation endpoint. Long-term keys cannot be used
// here; federation requires a session token.
func (c *Client) GenerateConsoleURL(ctx context.Context, key *SessionKey) (string, error) {
	session, err := json.Marshal(map[string]string{
		"sessionId":    key.AccessKey,
		"sessionKey":   key.SecretKey,
		"sessionToken": key.SessionToken,
	})
	if err != nil {
		return "", transportError(err)
	}

	endpoint := fmt.Sprintf("%s?Action=getSigninToken&SessionType=json&Session=%s",
		c.signinURL, url.QueryEscape(string(session)))

	c.debugf("console", "requesting signin token from federation endpoint")

	resp, err := c.execute(ctx, "GET", endpoint, nil, nil)
	if err != nil {
		return "", err
	}
	if resp.status != 200 {
		return "", &Error{Kind: ErrBadResponse, Message: string(resp.body)}
	}

	var federation struct {
		SigninToken string `json:"SigninToken"`
	}
	if derr := decode(resp.body, &federation); derr != nil {
		return "", derr
	}
	if federation.SigninToken == "" {
		return "", &Error{Kind: ErrUpstreamProtocol, Message: "no signin token returned"}
	}

	return fmt.Sprintf("%s?Action=login&Destination=%s&SigninToken=%s",
		c.signinURL,
		url.QueryEscape(c.consoleURL),
		url.QueryEscape(federation.SigninToken),
	), nil
}
