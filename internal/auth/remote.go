package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// RemoteProvider talks to the hosted auth service over HTTP. Endpoint names
// mirror the service's RPC functions. Failures map onto the shared taxonomy;
// nothing here retries, that decision stays with the caller.
type RemoteProvider struct {
	baseURL string
	client  *http.Client
}

func NewRemoteProvider(baseURL string) *RemoteProvider {
	return &RemoteProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *RemoteProvider) Authenticate(ctx context.Context, ppmkID, password string) (Identity, error) {
	var id Identity
	err := p.call(ctx, "authenticate_user", map[string]string{
		"p_ppmk_id":  strings.TrimSpace(ppmkID),
		"p_password": password,
	}, &id)
	return id, err
}

func (p *RemoteProvider) CreateAccount(ctx context.Context, ppmkID, password string) (Identity, error) {
	if len(password) < MinPasswordLen {
		return Identity{}, &ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	var id Identity
	err := p.call(ctx, "create_user_account", map[string]string{
		"p_ppmk_id":  strings.TrimSpace(ppmkID),
		"p_password": password,
	}, &id)
	return id, err
}

func (p *RemoteProvider) VerifyEligibility(ctx context.Context, ppmkID, nationalID string) (Eligibility, error) {
	var el Eligibility
	err := p.call(ctx, "verify_user_credentials", map[string]string{
		"p_ppmk_id":   strings.TrimSpace(ppmkID),
		"p_ic_number": strings.TrimSpace(nationalID),
	}, &el)
	return el, err
}

func (p *RemoteProvider) call(ctx context.Context, fn string, params any, out any) error {
	body, err := json.Marshal(params)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/rpc/"+fn, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return &TransientError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransientError{Err: fmt.Errorf("decode %s response: %w", fn, err)}
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrBadCredentials
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotEligible
	case resp.StatusCode == http.StatusConflict:
		if fn == "verify_user_credentials" {
			return ErrAlreadyRegistered
		}
		return ErrConflict
	case resp.StatusCode == http.StatusUnprocessableEntity, resp.StatusCode == http.StatusBadRequest:
		var ve struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		}
		if json.NewDecoder(resp.Body).Decode(&ve) == nil && ve.Reason != "" {
			return &ValidationError{Field: ve.Field, Reason: ve.Reason}
		}
		return &ValidationError{Field: "request", Reason: "rejected by the auth service"}
	default:
		return &TransientError{Err: fmt.Errorf("%s: unexpected status %d", fn, resp.StatusCode)}
	}
}
