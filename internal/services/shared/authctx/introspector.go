// Package authctx validates operator tokens against the external auth
// service.
package authctx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ResourceSecretHeader authenticates the console to the introspect endpoint.
const ResourceSecretHeader = "X-Resource-Secret"

// IntrospectionResult mirrors the auth service introspection JSON response.
type IntrospectionResult struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// Introspector validates an OAuth access token via introspection.
type Introspector interface {
	Introspect(ctx context.Context, token string) (IntrospectionResult, error)
}

// HTTPIntrospector calls a remote HTTP introspect endpoint.
type HTTPIntrospector struct {
	url            string
	resourceSecret string
	client         *http.Client
}

// NewHTTPIntrospector creates an introspector that POSTs to the given URL.
func NewHTTPIntrospector(url, resourceSecret string, client *http.Client) *HTTPIntrospector {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPIntrospector{
		url:            strings.TrimSpace(url),
		resourceSecret: strings.TrimSpace(resourceSecret),
		client:         client,
	}
}

// Introspect validates the token by calling the introspect endpoint. A blank
// token is reported inactive without a network call.
func (h *HTTPIntrospector) Introspect(ctx context.Context, token string) (IntrospectionResult, error) {
	if h == nil || h.url == "" {
		return IntrospectionResult{}, errors.New("introspect url is not configured")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return IntrospectionResult{}, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, nil)
	if err != nil {
		return IntrospectionResult{}, fmt.Errorf("build introspect request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if h.resourceSecret != "" {
		req.Header.Set(ResourceSecretHeader, h.resourceSecret)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return IntrospectionResult{}, fmt.Errorf("introspect request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return IntrospectionResult{}, fmt.Errorf("introspect returned %s", resp.Status)
	}

	var result IntrospectionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return IntrospectionResult{}, fmt.Errorf("decode introspect response: %w", err)
	}
	result.UserID = strings.TrimSpace(result.UserID)
	if result.Active && result.UserID == "" {
		return IntrospectionResult{}, errors.New("introspect response is active without a user id")
	}
	return result, nil
}
