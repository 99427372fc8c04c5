package server

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	stargatev1 "github.com/ogurasousui/stargate-grpc-clean-arch/internal/adapters/grpc/gen/stargate/v1"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/adapters/grpc/interceptor"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/adapters/repository/sqlite"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/duty"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/config"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/db/migrations"
	sqlitedb "github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/db/sqlite"
)

type testEnv struct {
	conn   *grpc.ClientConn
	people stargatev1.PersonServiceClient
	duties stargatev1.AstronautDutyServiceClient
	logs   *observer.ObservedLogs
}

func startServer(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()
	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "stargate.db"),
	}
	if err := migrations.Up(ctx, cfg, nil); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db, err := sqlitedb.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	tx := sqlitedb.NewTransactionManager(db)
	peopleRepo := sqlite.NewPersonRepository(db)
	personSvc := person.NewService(peopleRepo, nil, tx)
	dutySvc := duty.NewService(peopleRepo, sqlite.NewTimelineRepository(db), sqlite.NewStatusRepository(db), tx)

	core, logs := observer.New(zapcore.DebugLevel)
	srv := New("bufnet", personSvc, dutySvc, WithLogger(zap.New(core)), WithShutdownTimeout(time.Second))

	lis := bufconn.Listen(1 << 20)
	serveCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(serveCtx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		if err := <-done; err != nil {
			t.Errorf("serve returned error: %v", err)
		}
	})

	return &testEnv{
		conn:   conn,
		people: stargatev1.NewPersonServiceClient(conn),
		duties: stargatev1.NewAstronautDutyServiceClient(conn),
		logs:   logs,
	}
}

func TestServer_HealthServing(t *testing.T) {
	t.Parallel()

	env := startServer(t)

	for _, service := range []string{"", "stargate.v1.PersonService", "stargate.v1.AstronautDutyService"} {
		resp, err := healthpb.NewHealthClient(env.conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
		if err != nil {
			t.Fatalf("health check %q: %v", service, err)
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			t.Fatalf("expected SERVING for %q, got %v", service, resp.GetStatus())
		}
	}
}

func TestServer_DutyLifecycle(t *testing.T) {
	t.Parallel()

	env := startServer(t)
	ctx := context.Background()

	created, err := env.people.CreatePerson(ctx, &stargatev1.CreatePersonRequest{Name: "John Doe"})
	if err != nil {
		t.Fatalf("CreatePerson: %v", err)
	}
	if created.GetPerson().GetStatus() != nil {
		t.Fatalf("new person must not have a status")
	}

	steps := []struct {
		rank, title, start string
	}{
		{"1LT", "Commander", "2020-01-01"},
		{"CPT", "Pilot", "2021-06-15"},
		{"CPT", "RETIRED", "2023-03-01"},
	}
	for _, s := range steps {
		if _, err := env.duties.CreateAstronautDuty(ctx, &stargatev1.CreateAstronautDutyRequest{
			Name: "John Doe", Rank: s.rank, DutyTitle: s.title, DutyStartDate: s.start,
		}); err != nil {
			t.Fatalf("CreateAstronautDuty(%s): %v", s.title, err)
		}
	}

	got, err := env.people.GetPerson(ctx, &stargatev1.GetPersonRequest{Name: "John Doe"})
	if err != nil {
		t.Fatalf("GetPerson: %v", err)
	}
	st := got.GetPerson().GetStatus()
	if st.GetCurrentRank() != "CPT" || st.GetCurrentDutyTitle() != "RETIRED" {
		t.Fatalf("unexpected status %+v", st)
	}
	if st.GetCareerStartDate() != "2020-01-01" || st.GetCareerEndDate().GetValue() != "2023-02-28" {
		t.Fatalf("unexpected career dates %+v", st)
	}

	list, err := env.duties.ListAstronautDuties(ctx, &stargatev1.ListAstronautDutiesRequest{Name: "John Doe"})
	if err != nil {
		t.Fatalf("ListAstronautDuties: %v", err)
	}
	duties := list.GetDuties()
	if len(duties) != 3 {
		t.Fatalf("expected 3 duties, got %d", len(duties))
	}
	if duties[0].DutyTitle != "RETIRED" || duties[0].GetDutyEndDate() != nil {
		t.Fatalf("latest duty must come first without end date: %+v", duties[0])
	}
	if duties[1].GetDutyEndDate().GetValue() != "2023-02-28" || duties[2].GetDutyEndDate().GetValue() != "2021-06-14" {
		t.Fatalf("unexpected derived end dates: %+v %+v", duties[1], duties[2])
	}

	rebuilt, err := env.duties.RebuildAstronautStatus(ctx, &stargatev1.RebuildAstronautStatusRequest{Name: "John Doe"})
	if err != nil {
		t.Fatalf("RebuildAstronautStatus: %v", err)
	}
	if rebuilt.GetPerson().GetStatus().GetCareerEndDate().GetValue() != "2023-02-28" {
		t.Fatalf("rebuild changed the projection: %+v", rebuilt.GetPerson().GetStatus())
	}
}

func TestServer_ErrorCodes(t *testing.T) {
	t.Parallel()

	env := startServer(t)
	ctx := context.Background()

	if _, err := env.people.CreatePerson(ctx, &stargatev1.CreatePersonRequest{Name: "Jane"}); err != nil {
		t.Fatalf("CreatePerson: %v", err)
	}

	cases := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{"duplicate person", func() error {
			_, err := env.people.CreatePerson(ctx, &stargatev1.CreatePersonRequest{Name: "Jane"})
			return err
		}, codes.AlreadyExists},
		{"blank name", func() error {
			_, err := env.people.CreatePerson(ctx, &stargatev1.CreatePersonRequest{Name: "  "})
			return err
		}, codes.InvalidArgument},
		{"unknown person", func() error {
			_, err := env.people.GetPerson(ctx, &stargatev1.GetPersonRequest{Name: "Nobody"})
			return err
		}, codes.NotFound},
		{"duty for unknown person", func() error {
			_, err := env.duties.CreateAstronautDuty(ctx, &stargatev1.CreateAstronautDutyRequest{
				Name: "Nobody", Rank: "1LT", DutyTitle: "Pilot", DutyStartDate: "2020-01-01",
			})
			return err
		}, codes.NotFound},
		{"malformed date", func() error {
			_, err := env.duties.CreateAstronautDuty(ctx, &stargatev1.CreateAstronautDutyRequest{
				Name: "Jane", Rank: "1LT", DutyTitle: "Pilot", DutyStartDate: "01/01/2020",
			})
			return err
		}, codes.InvalidArgument},
	}

	for _, tc := range cases {
		if got := status.Code(tc.call()); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestServer_RequestIDRoundTrip(t *testing.T) {
	t.Parallel()

	env := startServer(t)
	ctx := metadata.AppendToOutgoingContext(context.Background(), interceptor.RequestIDHeader, "trace-me")

	var header metadata.MD
	if _, err := env.people.ListPeople(ctx, &stargatev1.ListPeopleRequest{}, grpc.Header(&header)); err != nil {
		t.Fatalf("ListPeople: %v", err)
	}
	if got := header.Get(interceptor.RequestIDHeader); len(got) != 1 || got[0] != "trace-me" {
		t.Fatalf("expected request id echoed, got %v", got)
	}

	entries := env.logs.FilterMessage("grpc request").FilterField(zap.String("request_id", "trace-me")).All()
	if len(entries) != 1 {
		t.Fatalf("expected one access log entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["method"] != stargatev1.PersonService_ListPeople_FullMethodName {
		t.Fatalf("unexpected method %v", entries[0].ContextMap()["method"])
	}
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := New("bufnet", nil, nil, WithShutdownTimeout(100*time.Millisecond))
	lis := bufconn.Listen(1024)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean stop, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
