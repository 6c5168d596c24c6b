package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Venkatesh1410/smartbill/internal/client/models"
)

// Login authenticates and returns the issued bearer token. Anonymous call.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var out models.TokenResponse
	err := c.do(ctx, call{
		method:    http.MethodPost,
		path:      "/user/login",
		body:      req,
		anonymous: true,
		fallback:  msgLoginFailure,
	}, &out)
	return out.Token, err
}

// Signup registers a new account. Some backend versions return a token for
// immediate sign-in; the empty string means none was issued.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (string, error) {
	var out models.TokenResponse
	err := c.do(ctx, call{
		method:    http.MethodPost,
		path:      "/user/signup",
		body:      req,
		anonymous: true,
		fallback:  msgSignupFailure,
	}, &out)
	return out.Token, err
}

// ForgotPassword requests a re-issued token for the given account email.
func (c *Client) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (string, error) {
	var out models.TokenResponse
	err := c.do(ctx, call{
		method:    http.MethodPost,
		path:      "/user/forgotPassword",
		body:      req,
		anonymous: true,
	}, &out)
	return out.Token, err
}

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, call{method: http.MethodGet, path: "/user/get"}, &out)
	return out, err
}

func (c *Client) UpdateUser(ctx context.Context, userID string, req models.UpdateUserRequest) error {
	return c.do(ctx, call{
		method:   http.MethodPatch,
		path:     "/user/update",
		query:    url.Values{"userId": {userID}},
		body:     req,
		fallback: msgMutateFailure,
	}, nil)
}
