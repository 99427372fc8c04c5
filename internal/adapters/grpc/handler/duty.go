package handler

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	stargatev1 "github.com/ogurasousui/stargate-grpc-clean-arch/internal/adapters/grpc/gen/stargate/v1"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/duty"
)

// DutyGrpcHandler は AstronautDutyService の gRPC 実装です。
type DutyGrpcHandler struct {
	svc duty.UseCase
	stargatev1.UnimplementedAstronautDutyServiceServer
}

// NewDutyGrpcHandler は DutyGrpcHandler を生成します。
func NewDutyGrpcHandler(svc duty.UseCase) *DutyGrpcHandler {
	return &DutyGrpcHandler{svc: svc}
}

// CreateAstronautDuty は任務を記録し、現在の状態を更新します。
func (h *DutyGrpcHandler) CreateAstronautDuty(ctx context.Context, req *stargatev1.CreateAstronautDutyRequest) (*stargatev1.CreateAstronautDutyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	start, err := parseDate(req.GetDutyStartDate())
	if err != nil {
		return nil, toStatusError(err)
	}

	created, err := h.svc.CreateDuty(ctx, duty.CreateDutyInput{
		Name:      req.GetName(),
		Rank:      req.GetRank(),
		DutyTitle: req.GetDutyTitle(),
		StartDate: start,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &stargatev1.CreateAstronautDutyResponse{Duty: toAPIDuty(created)}, nil
}

// ListAstronautDuties は人員と任務履歴を新しい順で返します。
func (h *DutyGrpcHandler) ListAstronautDuties(ctx context.Context, req *stargatev1.ListAstronautDutiesRequest) (*stargatev1.ListAstronautDutiesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListDuties(ctx, duty.ListDutiesInput{Name: req.GetName()})
	if err != nil {
		return nil, toStatusError(err)
	}

	duties := make([]*stargatev1.AstronautDuty, 0, len(result.Duties))
	for _, d := range result.Duties {
		duties = append(duties, toAPIDuty(d))
	}

	return &stargatev1.ListAstronautDutiesResponse{
		Person: toAPIPerson(result.Person),
		Duties: duties,
	}, nil
}

// RebuildAstronautStatus は任務履歴から現在の状態を再構築します。
func (h *DutyGrpcHandler) RebuildAstronautStatus(ctx context.Context, req *stargatev1.RebuildAstronautStatusRequest) (*stargatev1.RebuildAstronautStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	rebuilt, err := h.svc.RebuildStatus(ctx, duty.RebuildStatusInput{Name: req.GetName()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &stargatev1.RebuildAstronautStatusResponse{Person: toAPIPerson(rebuilt)}, nil
}

func toAPIDuty(d *duty.Duty) *stargatev1.AstronautDuty {
	if d == nil {
		return nil
	}

	return &stargatev1.AstronautDuty{
		Id:            d.ID,
		PersonId:      d.PersonID,
		Rank:          d.Rank,
		DutyTitle:     d.DutyTitle,
		DutyStartDate: d.StartDate.Format(dateLayout),
		DutyEndDate:   timePointerToWrapper(d.EndDate),
		CreatedAt:     timestamppb.New(d.CreatedAt),
	}
}

func parseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, duty.ErrInvalidStartDate
	}
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, duty.ErrInvalidStartDate
	}
	return t, nil
}
