package alks

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDurations(t *testing.T) {
	tests := []struct {
		name      string
		serverMax int
		want      []int
	}{
		{"server max below ceiling", 4, []int{1, 2, 3, 4}},
		{"server max equals ceiling", 18, rangeInts(1, 18)},
		{"server max above ceiling is capped", 36, rangeInts(1, 18)},
		{"server max of one", 1, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "GET", r.Method)
				require.Equal(t, "/loginRoles/id/012345678910/Admin", r.URL.Path)
				writeJSON(w, 200, fmt.Sprintf(`{"statusMessage":"Success","loginRole":{"maxKeyDuration":%d}}`, tt.serverMax))
			}))
			defer srv.Close()

			client := newTestClient(t, srv.URL)
			acct := AccountRef{Account: "012345678910/ALKSAdmin - awsprod", Role: "Admin"}

			durations, err := client.GetDurations(context.Background(), acct, Auth{Userid: "jdoe", Password: "pw"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, durations)
		})
	}
}

func TestGetDurationsFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"statusMessage":"Account not found"}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.GetDurations(context.Background(), AccountRef{Account: "012345678910", Role: "Admin"}, Auth{Userid: "jdoe", Password: "pw"})
	require.Error(t, err)

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrOperationFailed, kind)
}

func TestGetAccountsCurrentSchema(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/getAccounts/", r.URL.Path)
		writeJSON(w, 200, `{
			"accountListRole": {
				"222222222222": [{"role": "dev", "iamKeyActive": false}],
				"111111111111": [{"role": "admin", "iamKeyActive": true}]
			}
		}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	entries, err := client.GetAccounts(context.Background(), Auth{Userid: "jdoe", Password: "pw"})
	require.NoError(t, err)

	// Normalized and ordered by account id ascending.
	require.Len(t, entries, 2)
	assert.Equal(t, AccountEntry{Account: "111111111111", Role: "admin", IAMKeyActive: true}, entries[0])
	assert.Equal(t, AccountEntry{Account: "222222222222", Role: "dev", IAMKeyActive: false}, entries[1])
}

func TestGetAccountsLegacySchema(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"accountRoles": {"222222222222": ["dev"]}}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	entries, err := client.GetAccounts(context.Background(), Auth{Userid: "jdoe", Password: "pw"})
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, AccountEntry{Account: "222222222222", Role: "dev", IAMKeyActive: false}, entries[0])
}

func TestGetAccountsUnknownSchema(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"statusMessage":"Success"}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.GetAccounts(context.Background(), Auth{Userid: "jdoe", Password: "pw"})
	require.Error(t, err)

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrUpstreamProtocol, kind)
}

func TestGetAccountsSkipsEmptyRoleLists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{
			"accountListRole": {
				"111111111111": [],
				"222222222222": [{"role": "dev", "iamKeyActive": false}]
			}
		}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	entries, err := client.GetAccounts(context.Background(), Auth{Userid: "jdoe", Password: "pw"})
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "222222222222", entries[0].Account)
}

func rangeInts(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
