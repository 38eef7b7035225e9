package notification

import (
	"context"
	"fmt"
)

type consoleService struct{}

// NewConsoleService returns a sink that prints messages to stdout, used when no
// real sink is configured.
func NewConsoleService() Service {
	return consoleService{}
}

func (c consoleService) SendText(ctx context.Context, text string) error {
	fmt.Println(text)
	return nil
}
