package server

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/propscope/underwriter/internal/common"
)

// RequestIDInterceptor tags every RPC with a request id and logs its outcome.
// The id travels in the context so handlers can correlate their log lines.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.New().String()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
			return resp, err
		}
		logger.Info("rpc handled",
			"method", info.FullMethod,
			"request_id", requestID,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return resp, err
	}
}
