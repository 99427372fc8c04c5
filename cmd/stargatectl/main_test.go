package main

import (
	"bytes"
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	stargatev1 "github.com/ogurasousui/stargate-grpc-clean-arch/internal/adapters/grpc/gen/stargate/v1"
)

type stubPeople struct {
	stargatev1.UnimplementedPersonServiceServer
}

func (stubPeople) GetPerson(_ context.Context, req *stargatev1.GetPersonRequest) (*stargatev1.GetPersonResponse, error) {
	if req.GetName() != "John Doe" {
		return nil, status.Error(codes.NotFound, "person not found")
	}
	return &stargatev1.GetPersonResponse{Person: &stargatev1.Person{Id: 7, Name: req.GetName()}}, nil
}

type stubDuties struct {
	stargatev1.UnimplementedAstronautDutyServiceServer
	got *stargatev1.CreateAstronautDutyRequest
}

func (s *stubDuties) CreateAstronautDuty(_ context.Context, req *stargatev1.CreateAstronautDutyRequest) (*stargatev1.CreateAstronautDutyResponse, error) {
	s.got = req
	return &stargatev1.CreateAstronautDutyResponse{Duty: &stargatev1.AstronautDuty{Id: 1, Rank: req.GetRank(), DutyTitle: req.GetDutyTitle()}}, nil
}

func startStub(t *testing.T) (string, *stubDuties) {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	duties := &stubDuties{}
	srv := grpc.NewServer()
	stargatev1.RegisterPersonServiceServer(srv, stubPeople{})
	stargatev1.RegisterAstronautDutyServiceServer(srv, duties)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	return lis.Addr().String(), duties
}

func TestRun_GetPersonPrintsJSON(t *testing.T) {
	addr, _ := startStub(t)

	var out bytes.Buffer
	if err := run(context.Background(), []string{"--addr", addr, "get-person", "--name", "John Doe"}, &out); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	var resp stargatev1.GetPersonResponse
	if err := protojson.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if resp.GetPerson().GetId() != 7 || resp.GetPerson().GetName() != "John Doe" {
		t.Fatalf("unexpected output %+v", resp.GetPerson())
	}
}

func TestRun_AddDutyPassesFlags(t *testing.T) {
	addr, duties := startStub(t)

	var out bytes.Buffer
	args := []string{"--addr", addr, "add-duty", "--name", "John Doe", "--rank", "1LT", "--title", "Commander", "--start", "2020-01-01"}
	if err := run(context.Background(), args, &out); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	if duties.got == nil {
		t.Fatal("server did not receive the request")
	}
	if duties.got.GetName() != "John Doe" || duties.got.GetRank() != "1LT" ||
		duties.got.GetDutyTitle() != "Commander" || duties.got.GetDutyStartDate() != "2020-01-01" {
		t.Fatalf("unexpected request %+v", duties.got)
	}
}

func TestRun_PropagatesStatusErrors(t *testing.T) {
	addr, _ := startStub(t)

	err := run(context.Background(), []string{"--addr", addr, "get-person", "--name", "Nobody"}, &bytes.Buffer{})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestRun_RejectsUnknownCommand(t *testing.T) {
	if err := run(context.Background(), []string{"launch"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown command")
	}
	if err := run(context.Background(), nil, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error when command is missing")
	}
}
