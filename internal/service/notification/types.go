package notification

import "context"

// Service delivers an opaque formatted text message to an external sink.
// Delivery is best-effort: callers log failures and move on.
type Service interface {
	SendText(ctx context.Context, text string) error
}
