package handler

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	stargatev1 "github.com/ogurasousui/stargate-grpc-clean-arch/internal/adapters/grpc/gen/stargate/v1"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/duty"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"
)

type stubDutyUseCase struct {
	createInput duty.CreateDutyInput
	createOut   *duty.Duty
	createErr   error

	listInput duty.ListDutiesInput
	listOut   *duty.ListDutiesResult
	listErr   error

	rebuildInput duty.RebuildStatusInput
	rebuildOut   *person.Person
	rebuildErr   error
}

func (s *stubDutyUseCase) CreateDuty(ctx context.Context, in duty.CreateDutyInput) (*duty.Duty, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubDutyUseCase) ListDuties(ctx context.Context, in duty.ListDutiesInput) (*duty.ListDutiesResult, error) {
	s.listInput = in
	return s.listOut, s.listErr
}

func (s *stubDutyUseCase) RebuildStatus(ctx context.Context, in duty.RebuildStatusInput) (*person.Person, error) {
	s.rebuildInput = in
	return s.rebuildOut, s.rebuildErr
}

func TestDutyGrpcHandler_CreateAstronautDuty(t *testing.T) {
	t.Parallel()

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	stub := &stubDutyUseCase{createOut: &duty.Duty{ID: 5, PersonID: 1, Rank: "1LT", DutyTitle: "Commander", StartDate: start}}
	handler := NewDutyGrpcHandler(stub)

	resp, err := handler.CreateAstronautDuty(context.Background(), &stargatev1.CreateAstronautDutyRequest{
		Name:          "John Doe",
		Rank:          "1LT",
		DutyTitle:     "Commander",
		DutyStartDate: "2020-01-01",
	})
	if err != nil {
		t.Fatalf("CreateAstronautDuty returned error: %v", err)
	}
	if !stub.createInput.StartDate.Equal(start) || stub.createInput.Name != "John Doe" {
		t.Fatalf("unexpected input %+v", stub.createInput)
	}
	if resp.GetDuty().GetId() != 5 || resp.GetDuty().GetDutyStartDate() != "2020-01-01" || resp.GetDuty().GetDutyEndDate() != nil {
		t.Fatalf("unexpected duty %+v", resp.GetDuty())
	}
}

func TestDutyGrpcHandler_CreateAstronautDuty_InvalidDate(t *testing.T) {
	t.Parallel()

	stub := &stubDutyUseCase{}
	handler := NewDutyGrpcHandler(stub)

	for _, raw := range []string{"", "2020/01/01", "2020-13-01", "10000-01-01"} {
		_, err := handler.CreateAstronautDuty(context.Background(), &stargatev1.CreateAstronautDutyRequest{
			Name: "John Doe", Rank: "1LT", DutyTitle: "Commander", DutyStartDate: raw,
		})
		if status.Code(err) != codes.InvalidArgument {
			t.Fatalf("expected InvalidArgument for %q, got %v", raw, err)
		}
	}
	if stub.createInput.Name != "" {
		t.Fatal("use case must not be called for an invalid date")
	}
}

func TestDutyGrpcHandler_CreateAstronautDuty_NotFound(t *testing.T) {
	t.Parallel()

	handler := NewDutyGrpcHandler(&stubDutyUseCase{createErr: duty.ErrPersonNotFound})

	_, err := handler.CreateAstronautDuty(context.Background(), &stargatev1.CreateAstronautDutyRequest{
		Name: "Nobody", Rank: "1LT", DutyTitle: "Commander", DutyStartDate: "2020-01-01",
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestDutyGrpcHandler_ListAstronautDuties(t *testing.T) {
	t.Parallel()

	end := time.Date(2022, 5, 31, 0, 0, 0, 0, time.UTC)
	stub := &stubDutyUseCase{listOut: &duty.ListDutiesResult{
		Person: &person.Person{ID: 1, Name: "John Doe"},
		Duties: []*duty.Duty{
			{ID: 3, DutyTitle: "RETIRED", StartDate: time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 1, DutyTitle: "Commander", StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: &end},
		},
	}}
	handler := NewDutyGrpcHandler(stub)

	resp, err := handler.ListAstronautDuties(context.Background(), &stargatev1.ListAstronautDutiesRequest{Name: "John Doe"})
	if err != nil {
		t.Fatalf("ListAstronautDuties returned error: %v", err)
	}
	if resp.GetPerson().GetName() != "John Doe" || len(resp.GetDuties()) != 2 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.GetDuties()[0].GetDutyEndDate() != nil || resp.GetDuties()[1].GetDutyEndDate().GetValue() != "2022-05-31" {
		t.Fatalf("unexpected end dates %+v", resp.GetDuties())
	}
}

func TestDutyGrpcHandler_RebuildAstronautStatus(t *testing.T) {
	t.Parallel()

	stub := &stubDutyUseCase{rebuildOut: &person.Person{ID: 1, Name: "John Doe", Status: &person.CurrentStatus{CurrentRank: "1LT"}}}
	handler := NewDutyGrpcHandler(stub)

	resp, err := handler.RebuildAstronautStatus(context.Background(), &stargatev1.RebuildAstronautStatusRequest{Name: "John Doe"})
	if err != nil {
		t.Fatalf("RebuildAstronautStatus returned error: %v", err)
	}
	if stub.rebuildInput.Name != "John Doe" || resp.GetPerson().GetStatus().GetCurrentRank() != "1LT" {
		t.Fatalf("unexpected response %+v", resp)
	}

	if _, err := handler.RebuildAstronautStatus(context.Background(), nil); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
