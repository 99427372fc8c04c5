//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/duty"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/config"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/db/migrations"
	pgdb "github.com/ogurasousui/stargate-grpc-clean-arch/internal/platform/db/postgres"
)

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "../../../../assets/local.yaml"
}

func resetSchema(t *testing.T, cfg config.DatabaseConfig) {
	t.Helper()

	ctx := context.Background()
	db, err := migrations.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("open migration db: %v", err)
	}
	m, err := migrations.New(db, cfg.Driver, "", nil)
	if err != nil {
		t.Fatalf("create migrator: %v", err)
	}
	if err := m.Drop(); err != nil {
		t.Fatalf("drop schema: %v", err)
	}
	_, _ = m.Close()

	if err := migrations.Up(ctx, cfg, nil); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

func TestAstronautLedgerIntegration(t *testing.T) {
	cfg, err := config.Load(configPathFromEnv())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		t.Skip("integration test requires the postgres driver")
	}
	resetSchema(t, cfg.Database)

	ctx := context.Background()
	pool, err := pgdb.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	tx := pgdb.NewTransactionManager(pool)
	people := NewPersonRepository(pool)
	personSvc := person.NewService(people, nil, tx)
	dutySvc := duty.NewService(people, NewTimelineRepository(pool), NewStatusRepository(pool), tx)

	if _, err := personSvc.CreatePerson(ctx, person.CreatePersonInput{Name: "John Doe"}); err != nil {
		t.Fatalf("CreatePerson error: %v", err)
	}
	if _, err := personSvc.CreatePerson(ctx, person.CreatePersonInput{Name: "John Doe"}); !errors.Is(err, person.ErrPersonAlreadyExists) {
		t.Fatalf("expected ErrPersonAlreadyExists, got %v", err)
	}

	records := []struct {
		rank, title string
		start       time.Time
	}{
		{"1LT", "Commander", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"RTR", "RETIRED", time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"MSTR", "Master Chief", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, r := range records {
		if _, err := dutySvc.CreateDuty(ctx, duty.CreateDutyInput{Name: "John Doe", Rank: r.rank, DutyTitle: r.title, StartDate: r.start}); err != nil {
			t.Fatalf("CreateDuty error: %v", err)
		}
	}

	got, err := personSvc.GetPerson(ctx, person.GetPersonInput{Name: "John Doe"})
	if err != nil {
		t.Fatalf("GetPerson error: %v", err)
	}
	if got.Status == nil || got.Status.CurrentRank != "RTR" {
		t.Fatalf("unexpected status %+v", got.Status)
	}
	if got.Status.CareerEndDate == nil || !got.Status.CareerEndDate.Equal(time.Date(2022, 5, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected career end %v", got.Status.CareerEndDate)
	}

	if _, err := personSvc.CreatePerson(ctx, person.CreatePersonInput{Name: "Crowd"}); err != nil {
		t.Fatalf("CreatePerson error: %v", err)
	}
	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := dutySvc.CreateDuty(ctx, duty.CreateDutyInput{
				Name:      "Crowd",
				Rank:      fmt.Sprintf("R%d", i),
				DutyTitle: "Pilot",
				StartDate: time.Date(2000+i, 1, 1, 0, 0, 0, 0, time.UTC),
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent CreateDuty error: %v", err)
		}
	}

	crowd, err := dutySvc.ListDuties(ctx, duty.ListDutiesInput{Name: "Crowd"})
	if err != nil {
		t.Fatalf("ListDuties error: %v", err)
	}
	if len(crowd.Duties) != 10 {
		t.Fatalf("expected 10 duties, got %d", len(crowd.Duties))
	}
	if crowd.Person.Status == nil || crowd.Person.Status.CurrentRank != "R9" {
		t.Fatalf("projection must reflect the latest duty, got %+v", crowd.Person.Status)
	}

	if _, err := dutySvc.CreateDuty(ctx, duty.CreateDutyInput{Name: "Nobody", Rank: "1LT", DutyTitle: "X", StartDate: time.Now()}); !errors.Is(err, duty.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}
