package api

import (
	"context"
	"net/http"

	"github.com/arkadys/soundclub/internal/models"
)

// LoginResult is the /login/ response: the bearer credential pair plus the
// full profile of the authenticated user.
type LoginResult struct {
	Message string         `json:"message"`
	Access  string         `json:"access"`
	Refresh string         `json:"refresh"`
	User    models.Profile `json:"user"`
}

type profileResult struct {
	Message string         `json:"message"`
	User    models.Profile `json:"user"`
}

// Register creates a new account. The server returns only an id/username
// acknowledgement; callers log in separately.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/register/", nil, body, nil)
}

// Login authenticates and returns the credential together with the profile.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "/login/", nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteAccount removes the authenticated account after password confirmation.
func (c *Client) DeleteAccount(ctx context.Context, password string) error {
	body := map[string]string{"password": password}
	return c.do(ctx, http.MethodDelete, "/delete-account/", nil, body, nil)
}

// UploadAvatar replaces the user's avatar and returns the updated profile.
func (c *Client) UploadAvatar(ctx context.Context, filename string, data []byte) (*models.Profile, error) {
	var res profileResult
	if err := c.upload(ctx, "/upload-avatar/", "avatar", filename, data, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

// UpdateBio patches the profile bio and returns the updated profile.
func (c *Client) UpdateBio(ctx context.Context, bio string) (*models.Profile, error) {
	body := map[string]string{"bio": bio}
	var res profileResult
	if err := c.do(ctx, http.MethodPatch, "/update-bio/", nil, body, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}
