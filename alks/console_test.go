package alks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSessionKey() *SessionKey {
	return &SessionKey{
		AccessKey:    "ASIAEXAMPLE",
		SecretKey:    "secret",
		SessionToken: "token",
		Account:      "111111111111",
		Role:         "Admin",
	}
}

func TestGenerateConsoleURL(t *testing.T) {
	var gotQuery url.Values

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeJSON(w, 200, `{"SigninToken":"abc"}`)
	}))
	defer srv.Close()

	client := newTestClient(t, "https://alks.example.com/rest")
	client.signinURL = srv.URL

	consoleURL, err := client.GenerateConsoleURL(context.Background(), testSessionKey())
	require.NoError(t, err)

	// The federation request carries the session fields as encoded JSON.
	assert.Equal(t, "getSigninToken", gotQuery.Get("Action"))
	assert.Equal(t, "json", gotQuery.Get("SessionType"))
	var session map[string]string
	require.NoError(t, json.Unmarshal([]byte(gotQuery.Get("Session")), &session))
	assert.Equal(t, "ASIAEXAMPLE", session["sessionId"])
	assert.Equal(t, "secret", session["sessionKey"])
	assert.Equal(t, "token", session["sessionToken"])

	assert.Contains(t, consoleURL, "Action=login")
	assert.Contains(t, consoleURL, "SigninToken=abc")
	assert.Contains(t, consoleURL, "Destination="+url.QueryEscape("https://console.aws.amazon.com/"))
}

func TestGenerateConsoleURLEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"SigninToken":""}`)
	}))
	defer srv.Close()

	client := newTestClient(t, "https://alks.example.com/rest")
	client.signinURL = srv.URL

	_, err := client.GenerateConsoleURL(context.Background(), testSessionKey())
	require.Error(t, err)

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrUpstreamProtocol, kind)
	assert.Equal(t, "no signin token returned", err.Error())
}

func TestGenerateConsoleURLBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		w.Write([]byte("Invalid session"))
	}))
	defer srv.Close()

	client := newTestClient(t, "https://alks.example.com/rest")
	client.signinURL = srv.URL

	_, err := client.GenerateConsoleURL(context.Background(), testSessionKey())
	require.Error(t, err)

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrBadResponse, kind)
	assert.Equal(t, "Invalid session", err.Error())
}
