package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	stargatev1 "github.com/ogurasousui/stargate-grpc-clean-arch/internal/adapters/grpc/gen/stargate/v1"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/adapters/grpc/handler"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/adapters/grpc/interceptor"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/duty"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"
)

const defaultShutdownTimeout = 10 * time.Second

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr      string
	shutdownTimeout time.Duration
	grpcServer      *grpc.Server
	health          *health.Server
	logger          *zap.Logger
}

// Option は Server の構築オプションです。
type Option func(*options)

type options struct {
	shutdownTimeout time.Duration
	logger          *zap.Logger
	serverOptions   []grpc.ServerOption
}

// WithShutdownTimeout は GracefulStop を待つ上限を設定します。超えた場合は強制停止します。
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}

// WithLogger はアクセスログとライフサイクルログの出力先を設定します。
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithServerOptions は grpc.NewServer に追加のオプションを渡します。
func WithServerOptions(opts ...grpc.ServerOption) Option {
	return func(o *options) {
		o.serverOptions = append(o.serverOptions, opts...)
	}
}

// New は人員サービスと任務サービスを公開する gRPC サーバーを構築します。
func New(listenAddr string, people person.UseCase, duties duty.UseCase, opts ...Option) *Server {
	o := options{shutdownTimeout: defaultShutdownTimeout, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	serverOpts := append([]grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptor.RequestID(),
			interceptor.Logging(o.logger),
			interceptor.Recovery(o.logger),
		),
	}, o.serverOptions...)

	srv := grpc.NewServer(serverOpts...)
	stargatev1.RegisterPersonServiceServer(srv, handler.NewPersonGrpcHandler(people))
	stargatev1.RegisterAstronautDutyServiceServer(srv, handler.NewDutyGrpcHandler(duties))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(stargatev1.PersonService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(stargatev1.AstronautDutyService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Server{
		listenAddr:      listenAddr,
		shutdownTimeout: o.shutdownTimeout,
		grpcServer:      srv,
		health:          healthServer,
		logger:          o.logger,
	}
}

// Run は listenAddr で待ち受けを開始し、コンテキストがキャンセルされるまでブロックします。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は lis でリクエストを処理します。ctx がキャンセルされると
// ヘルスチェックを NOT_SERVING にしてから GracefulStop します。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.logger.Info("grpc server listening", zap.String("addr", lis.Addr().String()))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("grpc server shutting down")
		s.stop()
		if err := <-serveErr; err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}
		return nil
	case err := <-serveErr:
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}
		return nil
	}
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.stop()
}

func (s *Server) stop() {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	timer := time.NewTimer(s.shutdownTimeout)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		s.logger.Warn("graceful stop timed out, forcing shutdown", zap.Duration("timeout", s.shutdownTimeout))
		s.grpcServer.Stop()
		<-done
	}
}
