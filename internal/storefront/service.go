package storefront

import (
	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/api"
	"github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/session"
)

// Service exposes the storefront resources over the authenticated pipeline.
type Service struct {
	api     *api.Client
	session *session.Store
}

// New creates a storefront service.
func New(client *api.Client, sess *session.Store) *Service {
	return &Service{api: client, session: sess}
}
