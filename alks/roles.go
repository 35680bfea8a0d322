package alks

import (
	"context"
	"encoding/json"
)

// CreateIAMRole creates a service IAM role. The server expects the
// default-policy flag as the string "1"/"0" while enableAlksAccess travels
// as a native boolean.
func (c *Client) CreateIAMRole(ctx context.Context, acct AccountRef, auth Auth, opts IAMRoleOptions) (*IAMRole, error) {
	body := accountPayload(acct, payload{
		"roleName":             opts.RoleName,
		"roleType":             opts.RoleType,
		"includeDefaultPolicy": wireBool(opts.IncludeDefaultPolicies),
		"enableAlksAccess":     opts.EnableALKSAccess,
	})

	raw, err := c.do(ctx, "POST", "/createRole/", body, auth)
	if err != nil {
		return nil, err
	}

	role := IAMRole{RoleName: opts.RoleName, RoleType: opts.RoleType}
	if derr := decode(raw, &role); derr != nil {
		return nil, derr
	}
	return &role, nil
}

// CreateIAMTrustRole creates an IAM role assumable by the principal named in
// TrustArn rather than by an AWS service.
func (c *Client) CreateIAMTrustRole(ctx context.Context, acct AccountRef, auth Auth, opts TrustRoleOptions) (*IAMRole, error) {
	body := accountPayload(acct, payload{
		"roleName":         opts.RoleName,
		"roleType":         opts.RoleType,
		"trustArn":         opts.TrustArn,
		"enableAlksAccess": opts.EnableALKSAccess,
	})

	raw, err := c.do(ctx, "POST", "/createNonServiceRole/", body, auth)
	if err != nil {
		return nil, err
	}

	role := IAMRole{RoleName: opts.RoleName, RoleType: opts.RoleType}
	if derr := decode(raw, &role); derr != nil {
		return nil, derr
	}
	return &role, nil
}

// DeleteIAMRole removes a role previously created through ALKS. The verb is
// DELETE unless Config.DeleteRoleViaPOST selects the older server surface.
// The raw server body is returned on success.
func (c *Client) DeleteIAMRole(ctx context.Context, acct AccountRef, auth Auth, roleName string) (map[string]interface{}, error) {
	method := "DELETE"
	if c.config.DeleteRoleViaPOST {
		method = "POST"
	}

	body := accountPayload(acct, payload{"roleName": roleName})

	raw, err := c.do(ctx, method, "/deleteRole/", body, auth)
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if derr := decode(raw, &out); derr != nil {
		return nil, derr
	}
	return out, nil
}

// GetIAMRoleTypes returns the role-type catalogue in server order. The
// server double-encodes the list: the roleTypes field is itself a JSON
// string, decoded here rather than with the outer body.
func (c *Client) GetIAMRoleTypes(ctx context.Context, auth Auth) ([]string, error) {
	body := payload{
		"userid": auth.Userid,
		"server": c.config.BaseURL,
	}

	raw, err := c.do(ctx, "POST", "/getAWSRoleTypes/", body, auth)
	if err != nil {
		return nil, err
	}

	var outer struct {
		RoleTypes string `json:"roleTypes"`
	}
	if derr := decode(raw, &outer); derr != nil {
		return nil, derr
	}

	var types []string
	if err := json.Unmarshal([]byte(outer.RoleTypes), &types); err != nil {
		return nil, &Error{Kind: ErrUpstreamProtocol, Message: "malformed role type list", Err: err}
	}
	return types, nil
}
