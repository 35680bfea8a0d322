package alks

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerAuthViaRefreshToken(t *testing.T) {
	var exchangeBody map[string]interface{}
	var keysAuth string
	var keysBody map[string]interface{}

	mux := http.NewServeMux()
	mux.HandleFunc("/accessToken/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		exchangeBody = decodeBody(t, r)
		writeJSON(w, 200, `{"accessToken":"short-lived","expiresIn":3600}`)
	})
	mux.HandleFunc("/getKeys/", func(w http.ResponseWriter, r *http.Request) {
		keysAuth = r.Header.Get("Authorization")
		keysBody = decodeBody(t, r)
		writeJSON(w, 200, `{"statusMessage":"Success","accessKey":"ak","secretKey":"sk","sessionToken":"st"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	acct := AccountRef{Account: "111111111111", Role: "Admin"}

	key, err := client.CreateKey(context.Background(), acct, Auth{RefreshToken: "opaque-refresh"}, 1)
	require.NoError(t, err)
	assert.Equal(t, "ak", key.AccessKey)

	assert.Equal(t, "opaque-refresh", exchangeBody["refreshToken"])
	assert.Equal(t, "Bearer short-lived", keysAuth)
	assert.NotContains(t, keysBody, "token")
	assert.NotContains(t, keysBody, "password")
	assert.NotContains(t, keysBody, "userid")
	assert.NotContains(t, keysBody, "refreshToken")
}

func TestFailedExchangeAbortsOuterCall(t *testing.T) {
	keysCalls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/accessToken/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 401, `{"errors":["invalid refresh token"]}`)
	})
	mux.HandleFunc("/getKeys/", func(w http.ResponseWriter, r *http.Request) {
		keysCalls++
		writeJSON(w, 200, `{"statusMessage":"Success"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.CreateKey(context.Background(), AccountRef{Account: "111111111111", Role: "Admin"}, Auth{RefreshToken: "bad"}, 1)
	require.Error(t, err)

	// The exchange failure comes back unchanged and the outer request is
	// never issued.
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrBadResponse, kind)
	assert.Equal(t, "invalid refresh token", err.Error())
	assert.Equal(t, 0, keysCalls)
}

func TestLegacyPasswordMode(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBody = decodeBody(t, r)
		writeJSON(w, 200, `{"statusMessage":"Success","accessKey":"ak","secretKey":"sk","sessionToken":"st"}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, func(c *Config) {
		c.AuthMode = AuthModeLegacyPassword
	})

	_, err := client.CreateKey(context.Background(), AccountRef{Account: "111111111111", Role: "Admin"}, Auth{Userid: "jdoe", Password: "hunter2"}, 1)
	require.NoError(t, err)

	assert.Empty(t, gotAuth)
	assert.Equal(t, "jdoe", gotBody["userid"])
	assert.Equal(t, "hunter2", gotBody["password"])
}

func TestLegacyModeFallsBackToHeaderOnGet(t *testing.T) {
	var gotAuth string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "GET", r.Method)
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		writeJSON(w, 200, `{"statusMessage":"Success","loginRole":{"maxKeyDuration":2}}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, func(c *Config) {
		c.AuthMode = AuthModeLegacyPassword
	})

	durations, err := client.GetDurations(context.Background(), AccountRef{Account: "012345678910", Role: "Admin"}, Auth{Userid: "jdoe", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, durations)

	// GET sends no body, so the credentials ride the header even in legacy
	// mode rather than being dropped with the body.
	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("jdoe:hunter2"))
	assert.Equal(t, expected, gotAuth)
	assert.Empty(t, gotBody)
}

func TestDurationsExchangeCarriesAccount(t *testing.T) {
	var exchangeBody map[string]interface{}

	mux := http.NewServeMux()
	mux.HandleFunc("/accessToken/", func(w http.ResponseWriter, r *http.Request) {
		exchangeBody = decodeBody(t, r)
		writeJSON(w, 200, `{"accessToken":"short-lived","expiresIn":3600}`)
	})
	mux.HandleFunc("/loginRoles/id/012345678910/Admin", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer short-lived", r.Header.Get("Authorization"))
		writeJSON(w, 200, `{"statusMessage":"Success","loginRole":{"maxKeyDuration":2}}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	acct := AccountRef{Account: "012345678910/ALKSAdmin - awsprod", Role: "Admin"}

	durations, err := client.GetDurations(context.Background(), acct, Auth{RefreshToken: "opaque-refresh"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, durations)

	// The exchange posts the pending call's account fields with the token.
	assert.Equal(t, "opaque-refresh", exchangeBody["refreshToken"])
	assert.Equal(t, acct.Account, exchangeBody["account"])
	assert.Equal(t, "Admin", exchangeBody["role"])
}

func TestCancelDuringExchangeAbortsOuterCall(t *testing.T) {
	keysCalls := 0
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/accessToken/", func(w http.ResponseWriter, r *http.Request) {
		// Cancel the caller mid-exchange, then wait for the client to
		// abandon the request. The body must be drained first: the server
		// only watches for client disconnects (and cancels r.Context())
		// once the request body has been consumed.
		io.Copy(io.Discard, r.Body)
		cancel()
		<-r.Context().Done()
	})
	mux.HandleFunc("/getKeys/", func(w http.ResponseWriter, r *http.Request) {
		keysCalls++
		writeJSON(w, 200, `{"statusMessage":"Success"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.CreateKey(ctx, AccountRef{Account: "111111111111", Role: "Admin"}, Auth{RefreshToken: "opaque-refresh"}, 1)
	require.Error(t, err)

	// Cancellation surfaces once, as a transport failure, and the outer
	// request never goes out.
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrTransport, kind)
	assert.Equal(t, 0, keysCalls)
}

func TestRefreshTokenToAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/accessToken/", r.URL.Path)
		writeJSON(w, 200, `{"accessToken":"abc","expiresIn":3600}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	token, err := client.RefreshTokenToAccessToken(context.Background(), "refresh")
	require.NoError(t, err)
	assert.Equal(t, "abc", token.AccessToken)
	assert.Equal(t, 3600, token.ExpiresIn)
}

func TestRefreshTokenExchangeMissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"expiresIn":3600}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.RefreshTokenToAccessToken(context.Background(), "refresh")
	require.Error(t, err)

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrUpstreamProtocol, kind)
}
