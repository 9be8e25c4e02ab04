package storefront

import (
	"context"

	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/session"
)

// Login exchanges email/password for a credential and persists it.
func (s *Service) Login(ctx context.Context, email, password string) (*session.Credential, error) {
	resp, err := s.api.Post(ctx, "/account/login/", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	cred, err := session.ParseCredential(resp.Data)
	if err != nil {
		return nil, err
	}
	return s.session.Save(cred)
}

// Signup registers a new account. The endpoint logs the user in on success,
// so the returned credential is persisted the same way Login does it.
func (s *Service) Signup(ctx context.Context, name, email, phone, password string) (*session.Credential, error) {
	resp, err := s.api.Post(ctx, "/account/signup/", map[string]string{
		"name":     name,
		"email":    email,
		"phone":    phone,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	cred, err := session.ParseCredential(resp.Data)
	if err != nil {
		return nil, err
	}
	return s.session.Save(cred)
}

// Logout clears the stored credential. The server-side logout call is
// best-effort: a dead session on the backend must not keep the client
// logged in.
func (s *Service) Logout(ctx context.Context) error {
	_, _ = s.api.Post(ctx, "/account/logout/", nil)
	return s.session.Clear()
}

// Profile fetches the current user's profile.
func (s *Service) Profile(ctx context.Context) (*Profile, error) {
	resp, err := s.api.Get(ctx, "/account/profile/")
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := resp.UnmarshalData(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
