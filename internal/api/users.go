package api

import (
	"context"
	"net/http"
	"strings"
)

// List returns every managed profile on the account.
func (s UsersService) List(ctx context.Context) (Result, error) {
	var result Result
	if err := s.get(ctx, "/uploadposts/users", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Create registers a new managed profile.
func (s UsersService) Create(ctx context.Context, username string) (Result, error) {
	if strings.TrimSpace(username) == "" {
		return nil, NewMissingFieldError("username")
	}
	body := map[string]string{"username": username}
	var result Result
	if err := s.do(ctx, http.MethodPost, "/uploadposts/users", body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes a managed profile and its platform connections. The vendor
// takes the username in a JSON body on DELETE rather than in the path.
func (s UsersService) Delete(ctx context.Context, username string) (Result, error) {
	if strings.TrimSpace(username) == "" {
		return nil, NewMissingFieldError("username")
	}
	body := map[string]string{"username": username}
	var result Result
	if err := s.do(ctx, http.MethodDelete, "/uploadposts/users", body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// JWTOptions customizes the white-label account-linking page opened with a
// generated token. All fields are optional.
type JWTOptions struct {
	RedirectURL        string   `json:"redirect_url,omitempty"`
	LogoImage          string   `json:"logo_image,omitempty"`
	RedirectButtonText string   `json:"redirect_button_text,omitempty"`
	Platforms          []string `json:"platforms,omitempty"`
	ShowCalendar       *bool    `json:"show_calendar,omitempty"`
	ReadonlyCalendar   *bool    `json:"readonly_calendar,omitempty"`
	ConnectTitle       string   `json:"connect_title,omitempty"`
	ConnectDescription string   `json:"connect_description,omitempty"`
}

type generateJWTRequest struct {
	Username string `json:"username"`
	JWTOptions
}

// GenerateJWT mints a short-lived token that lets an end user link their
// social accounts to the named profile through the vendor's hosted page.
func (s UsersService) GenerateJWT(ctx context.Context, username string, opts JWTOptions) (Result, error) {
	if strings.TrimSpace(username) == "" {
		return nil, NewMissingFieldError("username")
	}
	body := generateJWTRequest{Username: username, JWTOptions: opts}
	var result Result
	if err := s.do(ctx, http.MethodPost, "/uploadposts/users/generate-jwt", body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ValidateJWT checks whether a previously generated token is still valid.
func (s UsersService) ValidateJWT(ctx context.Context, token string) (Result, error) {
	if strings.TrimSpace(token) == "" {
		return nil, NewMissingFieldError("jwt")
	}
	body := map[string]string{"jwt": token}
	var result Result
	if err := s.do(ctx, http.MethodPost, "/uploadposts/users/validate-jwt", body, &result); err != nil {
		return nil, err
	}
	return result, nil
}
