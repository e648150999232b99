package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"farmrent-backend/internal/domain"
)

// AccountIDMetadataKey is set by the auth interceptor from the verified token.
const AccountIDMetadataKey = "account-id"

// GetAccountIDFromContext extracts the caller's account id from the gRPC metadata.
func GetAccountIDFromContext(ctx context.Context) (domain.AccountID, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Errorf(codes.Unauthenticated, "metadata is not provided")
	}

	ids := md.Get(AccountIDMetadataKey)
	if len(ids) == 0 || ids[0] == "" {
		return "", status.Errorf(codes.Unauthenticated, "account_id is not provided in metadata")
	}
	return domain.AccountID(ids[0]), nil
}
