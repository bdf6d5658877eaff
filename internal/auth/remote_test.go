package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func rpcServer(t *testing.T, handler http.HandlerFunc) *RemoteProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRemoteProvider(srv.URL)
}

func TestRemoteAuthenticateOK(t *testing.T) {
	t.Parallel()
	p := rpcServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rpc/authenticate_user", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var params map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		require.Equal(t, "demo", params["p_ppmk_id"])
		require.Equal(t, "demo123", params["p_password"])

		json.NewEncoder(w).Encode(Identity{ID: "id-1", PPMKID: "demo", FullName: "Demo Student"})
	})

	id, err := p.Authenticate(context.Background(), " demo ", "demo123")
	require.NoError(t, err)
	require.Equal(t, "Demo Student", id.FullName)
}

func TestRemoteStatusMapping(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		status int
		call   func(p *RemoteProvider) error
		want   error
	}{
		{
			"401 bad credentials", http.StatusUnauthorized,
			func(p *RemoteProvider) error {
				_, err := p.Authenticate(context.Background(), "demo", "wrong")
				return err
			},
			ErrBadCredentials,
		},
		{
			"404 not eligible", http.StatusNotFound,
			func(p *RemoteProvider) error {
				_, err := p.VerifyEligibility(context.Background(), "PPMK0000-000", "x")
				return err
			},
			ErrNotEligible,
		},
		{
			"409 on verify means already registered", http.StatusConflict,
			func(p *RemoteProvider) error {
				_, err := p.VerifyEligibility(context.Background(), "demo", "x")
				return err
			},
			ErrAlreadyRegistered,
		},
		{
			"409 on create means conflict", http.StatusConflict,
			func(p *RemoteProvider) error {
				_, err := p.CreateAccount(context.Background(), "demo", "long-enough")
				return err
			},
			ErrConflict,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := rpcServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})
			require.ErrorIs(t, tc.call(p), tc.want)
		})
	}
}

func TestRemoteValidationErrorCarriesFields(t *testing.T) {
	t.Parallel()
	p := rpcServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"field": "ppmk_id", "reason": "not on the member roster"})
	})

	_, err := p.CreateAccount(context.Background(), "PPMK0000-000", "long-enough")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "ppmk_id", verr.Field)
}

func TestRemoteServerErrorIsTransient(t *testing.T) {
	t.Parallel()
	p := rpcServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := p.Authenticate(context.Background(), "demo", "demo123")
	require.True(t, IsTransient(err))
}

func TestRemoteUnreachableIsTransient(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewRemoteProvider(url)
	_, err := p.Authenticate(context.Background(), "demo", "demo123")
	require.True(t, IsTransient(err))
}

func TestRemoteShortPasswordFailsLocally(t *testing.T) {
	t.Parallel()
	p := rpcServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called for a weak password")
	})
	_, err := p.CreateAccount(context.Background(), "demo", "short")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
