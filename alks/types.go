package alks

import "time"

// AccountRef identifies the ALKS account and role a request is issued
// against. Account is the 12-digit AWS account id, optionally carrying an
// alias suffix ("012345678910/ALKSAdmin - awsprod").
type AccountRef struct {
	Account string
	Role    string
}

// AccountID returns the bare 12-digit account id.
func (a AccountRef) AccountID() string {
	if len(a.Account) <= 12 {
		return a.Account
	}
	return a.Account[:12]
}

// Auth carries the caller's credentials for a single call. When RefreshToken
// is set the client exchanges it for a short-lived access token and sends a
// Bearer header; otherwise Userid and Password are used according to the
// configured AuthMode. Exactly one style is applied per call.
type Auth struct {
	Userid       string
	Password     string
	RefreshToken string
}

// SessionKey is a set of temporary AWS credentials issued by ALKS.
type SessionKey struct {
	AccessKey    string    `json:"accessKey"`
	SecretKey    string    `json:"secretKey"`
	SessionToken string    `json:"sessionToken"`
	Account      string    `json:"account"`
	Role         string    `json:"role"`
	SessionTime  int       `json:"sessionTime"` // hours
	Expires      time.Time `json:"expires"`
}

// LongTermKey is a non-expiring IAM access key pair.
type LongTermKey struct {
	AccessKey   string `json:"accessKey"`
	SecretKey   string `json:"secretKey"`
	IAMUserName string `json:"iamUserName"`
	IAMUserArn  string `json:"iamUserArn"`
	Account     string `json:"account"`
	Role        string `json:"role"`
}

// AccountEntry is one row of the normalized account listing.
type AccountEntry struct {
	Account      string `json:"account"`
	Role         string `json:"role"`
	IAMKeyActive bool   `json:"iam"`
}

// AccessToken is the product of a refresh-token exchange.
type AccessToken struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

// IAMRole describes a role created through ALKS.
type IAMRole struct {
	RoleName                   string `json:"roleName"`
	RoleType                   string `json:"roleType"`
	RoleArn                    string `json:"roleArn"`
	InstanceProfileArn         string `json:"instanceProfileArn"`
	AddedRoleToInstanceProfile bool   `json:"addedRoleToInstanceProfile"`
}

// IAMRoleOptions are the caller-supplied fields for CreateIAMRole.
type IAMRoleOptions struct {
	RoleName               string
	RoleType               string
	IncludeDefaultPolicies bool
	EnableALKSAccess       bool
}

// TrustRoleOptions are the caller-supplied fields for CreateIAMTrustRole.
// TrustArn identifies the principal allowed to assume the role.
type TrustRoleOptions struct {
	RoleName         string
	RoleType         string
	TrustArn         string
	EnableALKSAccess bool
}
