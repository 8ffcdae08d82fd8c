package interceptors

import (
	"context"

	"google.golang.org/grpc/metadata"

	"github.com/jcmexdev/restaurant-pos/internal/pkg/interceptors/constants"
)

// propagated lists the headers copied from a request context into outgoing calls.
var propagated = []string{constants.HeaderXRequestId, constants.HeaderXIdempotencyKey}

// GetMetadataValue looks a header up in the context values first, then in
// incoming and outgoing gRPC metadata. It returns "" when nothing is found.
func GetMetadataValue(ctx context.Context, key string) string {
	if v, ok := ctx.Value(constants.KeyFor(key)).(string); ok && v != "" {
		return v
	}

	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(key); len(ids) > 0 {
			return ids[0]
		}
	}

	if md, ok := metadata.FromOutgoingContext(ctx); ok {
		if ids := md.Get(key); len(ids) > 0 {
			return ids[0]
		}
	}
	return ""
}

// ContextWithPropagatedIDs copies the request id and idempotency key into
// outgoing gRPC metadata, skipping the ones that are empty.
func ContextWithPropagatedIDs(ctx context.Context) context.Context {
	for _, key := range propagated {
		if v := GetMetadataValue(ctx, key); v != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, key, v)
		}
	}
	return ctx
}
