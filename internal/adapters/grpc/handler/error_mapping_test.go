package handler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/duty"
	"github.com/ogurasousui/stargate-grpc-clean-arch/internal/core/person"
)

func TestToStatusError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want codes.Code
	}{
		{person.ErrInvalidName, codes.InvalidArgument},
		{person.ErrInvalidPageSize, codes.InvalidArgument},
		{duty.ErrInvalidRank, codes.InvalidArgument},
		{duty.ErrInvalidStartDate, codes.InvalidArgument},
		{person.ErrPersonAlreadyExists, codes.AlreadyExists},
		{person.ErrPersonNotFound, codes.NotFound},
		{fmt.Errorf("wrapped: %w", duty.ErrPersonNotFound), codes.NotFound},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("disk full"), codes.Internal},
	}

	for _, tc := range cases {
		if got := status.Code(toStatusError(tc.err)); got != tc.want {
			t.Errorf("toStatusError(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}

	if toStatusError(nil) != nil {
		t.Error("nil error must stay nil")
	}
}
