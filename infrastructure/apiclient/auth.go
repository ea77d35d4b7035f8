package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"web3admin/models"
)

// LoginResult is the data of a successful login.
type LoginResult struct {
	Token string       `json:"token"`
	Admin models.Admin `json:"admin"`
}

// RegisterInput creates another admin account.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	data, err := c.Public(ctx, http.MethodPost, "/api/admin/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return LoginResult{}, err
	}
	var out LoginResult
	if err := json.Unmarshal(data, &out); err != nil {
		return LoginResult{}, fmt.Errorf("decode login data: %w", err)
	}
	if out.Token == "" {
		return LoginResult{}, errors.New("login response carried no token")
	}
	return out, nil
}

func (c *Client) Profile(ctx context.Context) (models.Admin, error) {
	data, err := c.Admin(ctx, http.MethodGet, "/api/admin/me", nil)
	if err != nil {
		return models.Admin{}, err
	}
	var admin models.Admin
	if err := json.Unmarshal(data, &admin); err != nil {
		return models.Admin{}, fmt.Errorf("decode profile: %w", err)
	}
	if admin.ID == "" && admin.Email == "" {
		return models.Admin{}, errors.New("profile response carried no admin")
	}
	return admin, nil
}

func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	_, err := c.Admin(ctx, http.MethodPut, "/api/admin/password", map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	})
	return err
}

func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	_, err := c.Create(ctx, Admins, in)
	return err
}

// Health returns the status string of GET /health, which is not enveloped.
func (c *Client) Health(ctx context.Context) (string, error) {
	status, raw, err := c.do(ctx, http.MethodGet, "/health", nil, false)
	if err != nil {
		return "", err
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", &TransportError{Method: http.MethodGet, Endpoint: "/health", Status: status, Err: err}
	}
	return body.Status, nil
}
