package alks

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

type keyBody struct {
	AccessKey    string `json:"accessKey"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	IAMUserName  string `json:"iamUserName"`
	IAMUserArn   string `json:"iamUserArn"`
}

// CreateKey requests a temporary session key for the account/role. duration
// is in hours and must lie within the client ceiling; use GetDurations to
// learn the account's own maximum before asking for more than the default.
func (c *Client) CreateKey(ctx context.Context, acct AccountRef, auth Auth, duration int) (*SessionKey, error) {
	return c.createSessionKey(ctx, "/getKeys/", acct, auth, duration)
}

// CreateIAMKey requests a temporary session key with IAM privileges.
func (c *Client) CreateIAMKey(ctx context.Context, acct AccountRef, auth Auth, duration int) (*SessionKey, error) {
	return c.createSessionKey(ctx, "/getIAMKeys/", acct, auth, duration)
}

func (c *Client) createSessionKey(ctx context.Context, path string, acct AccountRef, auth Auth, duration int) (*SessionKey, error) {
	if duration < 1 || duration > c.config.MaxKeyDuration {
		return nil, errors.Errorf("alks: session duration must be between 1 and %d hours", c.config.MaxKeyDuration)
	}

	body := accountPayload(acct, payload{"sessionTime": duration})

	raw, err := c.do(ctx, "POST", path, body, auth)
	if err != nil {
		return nil, err
	}

	var key keyBody
	if derr := decode(raw, &key); derr != nil {
		return nil, derr
	}

	return &SessionKey{
		AccessKey:    key.AccessKey,
		SecretKey:    key.SecretKey,
		SessionToken: key.SessionToken,
		Account:      acct.Account,
		Role:         acct.Role,
		SessionTime:  duration,
		Expires:      time.Now().Add(time.Duration(duration) * time.Hour),
	}, nil
}

// CreateLongTermKey creates a non-expiring IAM access key pair for the named
// IAM user.
func (c *Client) CreateLongTermKey(ctx context.Context, acct AccountRef, auth Auth, iamUserName string) (*LongTermKey, error) {
	body := accountPayload(acct, payload{"iamUserName": iamUserName})

	raw, err := c.do(ctx, "POST", "/accessKeys/", body, auth)
	if err != nil {
		return nil, err
	}

	var key keyBody
	if derr := decode(raw, &key); derr != nil {
		return nil, derr
	}

	return &LongTermKey{
		AccessKey:   key.AccessKey,
		SecretKey:   key.SecretKey,
		IAMUserName: key.IAMUserName,
		IAMUserArn:  key.IAMUserArn,
		Account:     acct.Account,
		Role:        acct.Role,
	}, nil
}

// DeleteLongTermKey removes the access keys of the named IAM user. The raw
// server body is returned on success; there is no new entity to project.
func (c *Client) DeleteLongTermKey(ctx context.Context, acct AccountRef, auth Auth, iamUserName string) (map[string]interface{}, error) {
	body := accountPayload(acct, payload{"iamUserName": iamUserName})

	raw, err := c.do(ctx, "DELETE", "/IAMUser/", body, auth)
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if derr := decode(raw, &out); derr != nil {
		return nil, derr
	}
	return out, nil
}
