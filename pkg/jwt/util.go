package jwt

import "context"

type payloadKey struct{}

// SetPayloadToContext stores the verified payload for downstream handlers.
func SetPayloadToContext(ctx context.Context, payload *Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

// PayloadFromContext reads the verified payload, if any.
func PayloadFromContext(ctx context.Context) (*Payload, bool) {
	payload, ok := ctx.Value(payloadKey{}).(*Payload)
	return payload, ok
}
