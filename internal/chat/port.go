package chat

import "context"

type ChatServiceAPI interface {
	History() []Message
	QuickActions() []QuickAction
	Send(ctx context.Context, text string) (Message, error)
	Clear() error
}
