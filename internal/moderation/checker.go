package moderation

import "context"

// Checker decides whether a piece of text contains profanity. Implementations
// may call out to an external moderation service and can fail with transport
// errors, which callers surface as validation failures.
type Checker interface {
	ContainsProfanity(ctx context.Context, text string) (bool, error)
}
