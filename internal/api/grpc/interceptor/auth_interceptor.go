package interceptor

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"farmrent-backend/internal/config"
	"farmrent-backend/internal/logger"
	"farmrent-backend/internal/security"
)

type AuthInterceptor struct {
	tokenManager security.TokenManager
}

func NewAuthInterceptor(tm security.TokenManager) *AuthInterceptor {
	return &AuthInterceptor{tokenManager: tm}
}

// Unary returns a server interceptor function to authenticate unary RPCs
func (i *AuthInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		level := config.GetSecurityLevel(info.FullMethod)

		// Public endpoint - skip auth
		if level == config.SecurityPublic {
			return handler(ctx, req)
		}

		token, err := i.extractToken(ctx)
		if err != nil {
			return nil, err
		}

		claims, err := i.tokenManager.ValidateToken(token)
		switch {
		case errors.Is(err, security.ErrWrongTokenType):
			return nil, status.Error(codes.PermissionDenied, "access token required")
		case errors.Is(err, security.ErrExpiredToken):
			return nil, status.Error(codes.Unauthenticated, "token has expired")
		case err != nil:
			return nil, status.Errorf(codes.Unauthenticated, "invalid token: %v", err)
		}

		// Overwrite any client supplied "account-id" header with the verified subject.
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			md = metadata.New(nil)
		} else {
			md = md.Copy()
		}
		md.Set("account-id", claims.AccountID().String())
		newCtx := metadata.NewIncomingContext(ctx, md)

		resp, err := handler(newCtx, req)
		logger.Debug("gRPC call", "method", info.FullMethod, "account", claims.AccountID(), "code", status.Code(err).String(), "elapsed", time.Since(start))
		return resp, err
	}
}

func (i *AuthInterceptor) extractToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "metadata is not provided")
	}

	authHeader := md["authorization"]
	if len(authHeader) == 0 {
		return "", status.Error(codes.Unauthenticated, "authorization token is not provided")
	}

	token := authHeader[0]
	// Remove Bearer prefix if present
	if len(token) > 7 && strings.ToUpper(token[0:7]) == "BEARER " {
		token = token[7:]
	}

	return token, nil
}
