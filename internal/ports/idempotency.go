package ports

import "context"

// IdempotencyStore records gateway success envelopes keyed by an input hash
// so repeat payee/split creations can replay the original response instead
// of creating a duplicate resource on the gateway.
type IdempotencyStore interface {
	// Get returns the stored envelope body for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (body []byte, ok bool, err error)

	// Set stores the envelope body for key.
	Set(ctx context.Context, key string, body []byte) error
}
