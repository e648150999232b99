package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"farmrent-backend/internal/domain"
	"farmrent-backend/internal/logger"
)

// toStatus converts a service error into a gRPC status carrying the domain error code.
func toStatus(method string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	code := codes.Internal
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, domain.ErrValidation):
		code = codes.InvalidArgument
	case errors.Is(err, domain.ErrForbidden):
		code = codes.PermissionDenied
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrLocationUnresolvable):
		code = codes.FailedPrecondition
	}
	if code == codes.Internal {
		logger.Error("gRPC call failed", "method", method, "error", err)
		return status.Error(code, "internal error")
	}
	return status.Errorf(code, "%s: %v", domain.ErrorCode(err), err)
}
