package alks

import (
	"context"
	"fmt"
	"sort"
)

// GetDurations returns every session duration (in hours) the caller may
// request for the account/role: the full ascending sequence 1..ceiling,
// where the ceiling is the smaller of the client-side maximum and the
// server-reported maxKeyDuration for the login role.
func (c *Client) GetDurations(ctx context.Context, acct AccountRef, auth Auth) ([]int, error) {
	path := fmt.Sprintf("/loginRoles/id/%s/%s", acct.AccountID(), acct.Role)

	// The body never goes out on GET, but a bearer-authenticated call posts
	// its account fields with the token exchange.
	raw, err := c.do(ctx, "GET", path, accountPayload(acct, nil), auth)
	if err != nil {
		return nil, err
	}

	var body struct {
		LoginRole struct {
			MaxKeyDuration int `json:"maxKeyDuration"`
		} `json:"loginRole"`
	}
	if derr := decode(raw, &body); derr != nil {
		return nil, derr
	}

	max := body.LoginRole.MaxKeyDuration
	if max > c.config.MaxKeyDuration {
		max = c.config.MaxKeyDuration
	}

	durations := make([]int, 0, max)
	for i := 1; i <= max; i++ {
		durations = append(durations, i)
	}
	return durations, nil
}

// accountListing covers both response schemas the server may use: the
// current one carries a per-role iamKeyActive flag, the legacy one is a
// bare list of role names. Exactly one of the two maps is populated.
type accountListing struct {
	AccountListRole map[string][]struct {
		Role         string `json:"role"`
		IAMKeyActive bool   `json:"iamKeyActive"`
	} `json:"accountListRole"`
	AccountRoles map[string][]string `json:"accountRoles"`
}

// GetAccounts lists the accounts and roles available to the caller,
// normalized across API versions and ordered by account id ascending.
// Legacy-schema entries report IAMKeyActive as false.
func (c *Client) GetAccounts(ctx context.Context, auth Auth) ([]AccountEntry, error) {
	body := payload{
		"userid": auth.Userid,
		"server": c.config.BaseURL,
	}

	raw, err := c.do(ctx, "POST", "/getAccounts/", body, auth)
	if err != nil {
		return nil, err
	}

	var listing accountListing
	if derr := decode(raw, &listing); derr != nil {
		return nil, derr
	}

	entries := []AccountEntry{}
	switch {
	case listing.AccountListRole != nil:
		for acct, roles := range listing.AccountListRole {
			if len(roles) == 0 {
				continue
			}
			entries = append(entries, AccountEntry{
				Account:      acct,
				Role:         roles[0].Role,
				IAMKeyActive: roles[0].IAMKeyActive,
			})
		}
	case listing.AccountRoles != nil:
		for acct, roles := range listing.AccountRoles {
			if len(roles) == 0 {
				continue
			}
			entries = append(entries, AccountEntry{
				Account: acct,
				Role:    roles[0],
			})
		}
	default:
		return nil, &Error{Kind: ErrUpstreamProtocol, Message: "no account listing returned"}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Account < entries[j].Account
	})
	return entries, nil
}
