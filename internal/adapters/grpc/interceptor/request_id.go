// Package interceptor は gRPC サーバー共通の unary インターセプタを提供します。
package interceptor

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// RequestIDHeader はリクエスト相関 ID を運ぶメタデータのキーです。
const RequestIDHeader = "x-request-id"

const maxRequestIDLength = 128

type requestIDKey struct{}

// WithRequestID は ctx にリクエスト ID を格納します。
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext は ctx に格納されたリクエスト ID を返します。
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDKey{}).(string)
	return value
}

// RequestID は受信メタデータのリクエスト ID を引き継ぎ、なければ UUID を採番します。
// 採番した ID はレスポンスヘッダーでも返します。
func RequestID() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := incomingRequestID(ctx)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))
		return handler(WithRequestID(ctx, requestID), req)
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, value := range md.Get(RequestIDHeader) {
		value = strings.TrimSpace(value)
		if isPrintableASCII(value) && len(value) <= maxRequestIDLength {
			return value
		}
	}
	return ""
}

func isPrintableASCII(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}
