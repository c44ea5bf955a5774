package api

import (
	"context"
	"fmt"
)

type AuthResponse struct {
	Token string `json:"token"`
}

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp AuthResponse
	if err := c.postJSON(ctx, "/auth/login", payload, &resp); err != nil {
		return AuthResponse{}, err
	}
	if resp.Token == "" {
		return AuthResponse{}, fmt.Errorf("login failed: missing token")
	}

	c.AccessToken = resp.Token
	return resp, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.postJSON(ctx, "/auth/register", req, nil)
}

// CurrentUser resolves the session user and role claims from the stored
// token. A failure here is how an expired token surfaces.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	var user User
	if err := c.getJSON(ctx, "/auth/me", nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}
