package events

import "context"

// Publisher sends events to whatever bus the deployment wired up (in-process
// gochannel, NATS JetStream, or nothing at all).
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
