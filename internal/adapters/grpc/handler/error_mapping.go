package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/duty"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, person.ErrInvalidName),
		errors.Is(err, person.ErrInvalidPageSize),
		errors.Is(err, person.ErrInvalidPageToken),
		errors.Is(err, duty.ErrInvalidName),
		errors.Is(err, duty.ErrInvalidRank),
		errors.Is(err, duty.ErrInvalidDutyTitle),
		errors.Is(err, duty.ErrInvalidStartDate):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, person.ErrPersonAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, person.ErrPersonNotFound), errors.Is(err, duty.ErrPersonNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
