package handler

import (
	"errors"

	"github.com/ndenisov/userdir-server/internal/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func handleError(err error) error {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		return status.Error(codes.InvalidArgument, validationErr.Error())
	}

	var conflictErr *model.ConflictError
	if errors.As(err, &conflictErr) {
		return status.Error(codes.AlreadyExists, conflictErr.Error())
	}

	var notFoundErr *model.NotFoundError
	if errors.As(err, &notFoundErr) {
		return status.Error(codes.NotFound, notFoundErr.Error())
	}

	return status.Error(codes.Internal, "internal server error")
}
