package interceptor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/stargate.v1.PersonService/GetPerson"}

func TestRequestID_PropagatesIncomingValue(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "req-123"))

	var got string
	_, err := RequestID()(ctx, nil, testInfo, func(ctx context.Context, _ any) (any, error) {
		got = RequestIDFromContext(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor returned error: %v", err)
	}
	if got != "req-123" {
		t.Fatalf("expected propagated request id, got %q", got)
	}
}

func TestRequestID_GeneratesWhenMissingOrInvalid(t *testing.T) {
	t.Parallel()

	cases := map[string]context.Context{
		"missing":     context.Background(),
		"control":     metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "bad\x01id")),
		"too long":    metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, strings.Repeat("a", maxRequestIDLength+1))),
		"only spaces": metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "   ")),
	}

	for name, ctx := range cases {
		name, ctx := name, ctx
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var got string
			_, _ = RequestID()(ctx, nil, testInfo, func(ctx context.Context, _ any) (any, error) {
				got = RequestIDFromContext(ctx)
				return nil, nil
			})
			if len(got) != 36 {
				t.Fatalf("expected generated uuid, got %q", got)
			}
		})
	}
}

func TestLogging_RecordsOutcome(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	intercept := Logging(zap.New(core))
	ctx := WithRequestID(context.Background(), "req-1")

	if _, err := intercept(ctx, nil, testInfo, func(context.Context, any) (any, error) {
		return "ok", nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notFound := status.Error(codes.NotFound, "person not found")
	if _, err := intercept(ctx, nil, testInfo, func(context.Context, any) (any, error) {
		return nil, notFound
	}); !errors.Is(err, notFound) {
		t.Fatalf("expected handler error to pass through, got %v", err)
	}

	_, _ = intercept(ctx, nil, testInfo, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.Internal, "boom")
	})

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(entries))
	}

	wantLevels := []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	wantCodes := []string{"OK", "NotFound", "Internal"}
	for i, entry := range entries {
		if entry.Level != wantLevels[i] {
			t.Errorf("entry %d: expected level %s, got %s", i, wantLevels[i], entry.Level)
		}
		fields := entry.ContextMap()
		if fields["code"] != wantCodes[i] {
			t.Errorf("entry %d: expected code %s, got %v", i, wantCodes[i], fields["code"])
		}
		if fields["method"] != testInfo.FullMethod {
			t.Errorf("entry %d: unexpected method %v", i, fields["method"])
		}
		if fields["request_id"] != "req-1" {
			t.Errorf("entry %d: unexpected request id %v", i, fields["request_id"])
		}
		if _, ok := fields["duration"]; !ok {
			t.Errorf("entry %d: duration missing", i)
		}
	}
}

func TestRecovery_ConvertsPanicToInternal(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)
	resp, err := Recovery(zap.New(core))(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		panic("projection exploded")
	})

	if resp != nil {
		t.Fatalf("expected nil response, got %v", resp)
	}
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
	if logs.FilterMessage("panic in grpc handler").Len() != 1 {
		t.Fatal("expected panic to be logged")
	}
}

func TestRecovery_PassesThroughNormalResults(t *testing.T) {
	t.Parallel()

	resp, err := Recovery(nil)(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	if err != nil || resp != "ok" {
		t.Fatalf("unexpected result %v, %v", resp, err)
	}
}
