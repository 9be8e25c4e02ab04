package storefront

import "context"

// ChatMessages lists the support-chat history.
func (s *Service) ChatMessages(ctx context.Context) ([]ChatMessage, error) {
	resp, err := s.api.Get(ctx, "/support/messages/")
	if err != nil {
		return nil, err
	}
	var messages []ChatMessage
	if err := resp.UnmarshalData(&messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendChatMessage posts a message to support.
func (s *Service) SendChatMessage(ctx context.Context, body string) (*ChatMessage, error) {
	resp, err := s.api.Post(ctx, "/support/messages/", map[string]string{"body": body})
	if err != nil {
		return nil, err
	}
	var msg ChatMessage
	if err := resp.UnmarshalData(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
