package alks

import (
	"encoding/json"
	"net/http"
	"strings"
)

const statusSuccess = "success"

// response is a raw server reply prior to classification.
type response struct {
	status int
	body   []byte
}

// envelope is the status portion any ALKS response body may carry.
type envelope struct {
	StatusMessage string   `json:"statusMessage"`
	Errors        []string `json:"errors"`
	ErrorMessage  string   `json:"errorMessage"`
}

// classify interprets a raw response, first match wins:
//
//  1. non-200 status: ErrBadResponse with the best message the body offers
//  2. 200 with a statusMessage other than "success" (case-insensitive):
//     ErrOperationFailed
//  3. 200 with a non-empty errors list and no explicit failure status:
//     ErrOperationFailed with the first error
//  4. otherwise success; the raw body is returned for projection
//
// Transport failures never reach this point (see Client.execute).
func classify(resp *response) ([]byte, *Error) {
	if resp.status != http.StatusOK {
		return nil, &Error{Kind: ErrBadResponse, Message: extractMessage(resp.body)}
	}

	var env envelope
	// A 200 body that is not JSON has no status envelope to inspect.
	_ = json.Unmarshal(resp.body, &env)

	if env.StatusMessage != "" && !strings.EqualFold(env.StatusMessage, statusSuccess) {
		msg := env.StatusMessage
		if len(env.Errors) > 0 {
			msg = env.Errors[0]
		}
		return nil, &Error{Kind: ErrOperationFailed, Message: msg}
	}

	if len(env.Errors) > 0 {
		return nil, &Error{Kind: ErrOperationFailed, Message: env.Errors[0]}
	}

	return resp.body, nil
}

// extractMessage pulls the most specific failure text out of a non-200 body.
func extractMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		if len(env.Errors) > 0 {
			return env.Errors[0]
		}
		if env.StatusMessage != "" {
			return env.StatusMessage
		}
		if env.ErrorMessage != "" {
			return env.ErrorMessage
		}
	}
	return "bad response received, please check API URL"
}

// decode projects a successful body into out, reporting a protocol error if
// the server sent something unexpected.
func decode(body []byte, out interface{}) *Error {
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: ErrUpstreamProtocol, Message: "unexpected response body", Err: err}
	}
	return nil
}
