package alks

// payload is the wire body of one request, assembled fresh per call. Stages
// of the pipeline never mutate a payload they received; they return copies.
type payload map[string]interface{}

// sanitizeFields are payload fields whose values are masked before any
// logging, no matter what.
var sanitizeFields = map[string]bool{
	"password":     true,
	"refreshToken": true,
	"accessToken":  true,
	"accessKey":    true,
	"secretKey":    true,
	"sessionToken": true,
}

const maskedValue = "********"

// merge returns a new payload with overlay applied over p. Fields in overlay
// win, which is why account/role identifiers are overlaid last: callers
// cannot shadow them.
func (p payload) merge(overlay payload) payload {
	out := make(payload, len(p)+len(overlay))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// without returns a copy of p with the named fields removed.
func (p payload) without(fields ...string) payload {
	out := make(payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	for _, f := range fields {
		delete(out, f)
	}
	return out
}

// sanitized returns a copy of p safe to log.
func (p payload) sanitized() payload {
	out := make(payload, len(p))
	for k, v := range p {
		if sanitizeFields[k] {
			out[k] = maskedValue
		} else {
			out[k] = v
		}
	}
	return out
}

// wireBool serializes a boolean as the "1"/"0" string a handful of ALKS
// fields expect. Other boolean fields go over the wire as native JSON
// booleans; the quirk is per-field, not global.
func wireBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// accountPayload builds the standard request body: operation-specific fields
// first, account and role overlaid last.
func accountPayload(acct AccountRef, fields payload) payload {
	if fields == nil {
		fields = payload{}
	}
	return fields.merge(payload{
		"account": acct.Account,
		"role":    acct.Role,
	})
}
