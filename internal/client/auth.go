package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aurora-io/aurora-go/internal/http"
	"github.com/aurora-io/aurora-go/pkg/aurora"
)

// AuthClient implements aurora.AuthClient. SignIn, SignUp, and ListUsers use
// the tenant API key; Session and SignOut use the user's bearer token instead
// and send no API key.
type AuthClient struct {
	client *Client
}

// NewAuthClient creates a new auth client.
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

// SignIn implements aurora.AuthClient.SignIn.
func (c *AuthClient) SignIn(ctx context.Context, request *aurora.SignInRequest) (*aurora.Session, error) {
	resp, err := c.client.httpClient.Post(ctx, "/auth/signin", request)
	if err != nil {
		return nil, fmt.Errorf("signing in: %w", err)
	}

	var session aurora.Session

	err = json.Unmarshal(resp.Body, &session)
	if err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}

	return &session, nil
}

// SignUp implements aurora.AuthClient.SignUp.
func (c *AuthClient) SignUp(ctx context.Context, request *aurora.SignUpRequest) (*aurora.Session, error) {
	resp, err := c.client.httpClient.Post(ctx, "/auth/signup", request)
	if err != nil {
		return nil, fmt.Errorf("signing up: %w", err)
	}

	var session aurora.Session

	err = json.Unmarshal(resp.Body, &session)
	if err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}

	return &session, nil
}

// ListUsers implements aurora.AuthClient.ListUsers.
func (c *AuthClient) ListUsers(ctx context.Context, query *aurora.Query) (*aurora.UserList, error) {
	resp, err := c.client.httpClient.Get(ctx, "/auth/users", query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var list aurora.UserList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing users list: %w", err)
	}

	return &list, nil
}

// Session implements aurora.AuthClient.Session.
func (c *AuthClient) Session(ctx context.Context, token string) (*aurora.Session, error) {
	req := &http.Request{
		Method:    "GET",
		Path:      "/auth/session",
		AuthToken: token,
	}

	resp, err := c.client.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("validating session: %w", err)
	}

	var session aurora.Session

	err = json.Unmarshal(resp.Body, &session)
	if err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}

	return &session, nil
}

// SignOut implements aurora.AuthClient.SignOut.
func (c *AuthClient) SignOut(ctx context.Context, token string) error {
	req := &http.Request{
		Method:    "POST",
		Path:      "/auth/signout",
		AuthToken: token,
	}

	_, err := c.client.httpClient.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("signing out: %w", err)
	}

	return nil
}
