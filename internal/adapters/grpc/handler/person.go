package handler

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	stargatev1 "github.com/ogurasousui/stargate-grpc-clean-arch/internal/adapters/grpc/gen/stargate/v1"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"
)

const dateLayout = "2006-01-02"

// PersonGrpcHandler は PersonService の gRPC 実装です。
type PersonGrpcHandler struct {
	svc person.UseCase
	stargatev1.UnimplementedPersonServiceServer
}

// NewPersonGrpcHandler は PersonGrpcHandler を生成します。
func NewPersonGrpcHandler(svc person.UseCase) *PersonGrpcHandler {
	return &PersonGrpcHandler{svc: svc}
}

// CreatePerson は人員を登録します。
func (h *PersonGrpcHandler) CreatePerson(ctx context.Context, req *stargatev1.CreatePersonRequest) (*stargatev1.CreatePersonResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreatePerson(ctx, person.CreatePersonInput{Name: req.GetName()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &stargatev1.CreatePersonResponse{Person: toAPIPerson(created)}, nil
}

// RenamePerson は人員の名前を変更します。
func (h *PersonGrpcHandler) RenamePerson(ctx context.Context, req *stargatev1.RenamePersonRequest) (*stargatev1.RenamePersonResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	renamed, err := h.svc.RenamePerson(ctx, person.RenamePersonInput{
		CurrentName: req.GetCurrentName(),
		NewName:     req.GetNewName(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &stargatev1.RenamePersonResponse{Person: toAPIPerson(renamed)}, nil
}

// GetPerson は名前で人員を取得します。
func (h *PersonGrpcHandler) GetPerson(ctx context.Context, req *stargatev1.GetPersonRequest) (*stargatev1.GetPersonResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetPerson(ctx, person.GetPersonInput{Name: req.GetName()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &stargatev1.GetPersonResponse{Person: toAPIPerson(found)}, nil
}

// ListPeople は人員の一覧を取得します。
func (h *PersonGrpcHandler) ListPeople(ctx context.Context, req *stargatev1.ListPeopleRequest) (*stargatev1.ListPeopleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListPeople(ctx, person.ListPeopleInput{
		PageSize:  int(req.GetPageSize()),
		PageToken: req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	people := make([]*stargatev1.Person, 0, len(result.People))
	for _, p := range result.People {
		people = append(people, toAPIPerson(p))
	}

	return &stargatev1.ListPeopleResponse{
		People:        people,
		NextPageToken: result.NextPageToken,
	}, nil
}

func toAPIPerson(p *person.Person) *stargatev1.Person {
	if p == nil {
		return nil
	}

	return &stargatev1.Person{
		Id:        p.ID,
		Name:      p.Name,
		CreatedAt: timestamppb.New(p.CreatedAt),
		UpdatedAt: timestamppb.New(p.UpdatedAt),
		Status:    toAPIStatus(p.Status),
	}
}

func toAPIStatus(s *person.CurrentStatus) *stargatev1.AstronautStatus {
	if s == nil {
		return nil
	}

	return &stargatev1.AstronautStatus{
		CurrentRank:      s.CurrentRank,
		CurrentDutyTitle: s.CurrentDutyTitle,
		CareerStartDate:  s.CareerStartDate.Format(dateLayout),
		CareerEndDate:    timePointerToWrapper(s.CareerEndDate),
		UpdatedAt:        timestamppb.New(s.UpdatedAt),
	}
}

func timePointerToWrapper(value *time.Time) *wrapperspb.StringValue {
	if value == nil {
		return nil
	}
	return wrapperspb.String(value.Format(dateLayout))
}
