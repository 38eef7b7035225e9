package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/KNICEX/spread-monitor/internal/service/notification"
)

const defaultBaseURL = "https://api.telegram.org"

var _ notification.Service = (*Service)(nil)

// Service pushes messages to one or more Telegram chats via the bot API.
type Service struct {
	token   string
	chatIDs []string
	baseURL string
	cli     *http.Client
}

type Option func(s *Service)

// WithBaseURL overrides the API host, for tests.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.baseURL = baseURL
	}
}

func NewService(token string, chatIDs []string, opts ...Option) *Service {
	svc := &Service{
		token:   token,
		chatIDs: chatIDs,
		baseURL: defaultBaseURL,
		cli:     &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// SendText fans the message out to every configured chat. Each chat gets a
// short retry budget; failures are collected, not fatal to the other chats.
func (s *Service) SendText(ctx context.Context, text string) error {
	var errs []error
	for _, chatID := range s.chatIDs {
		if err := s.sendOnce(ctx, chatID, text); err != nil {
			errs = append(errs, fmt.Errorf("chat %s: %w", chatID, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Service) sendOnce(ctx context.Context, chatID, text string) error {
	params := url.Values{}
	params.Set("chat_id", chatID)
	params.Set("text", text)
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage?%s", s.baseURL, s.token, params.Encode())

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}
		resp, err := s.cli.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		resp.Body.Close()
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
		lastErr = fmt.Errorf("status %d", resp.StatusCode)
	}
	return lastErr
}
