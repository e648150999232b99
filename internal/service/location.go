package service

import (
	"context"

	"farmrent-backend/internal/location"
)

type locationService struct {
	resolver *location.Resolver
}

func NewLocationService(resolver *location.Resolver) LocationService {
	return &locationService{resolver: resolver}
}

func (s *locationService) Resolve(ctx context.Context, req location.Request) (string, error) {
	return s.resolver.Resolve(ctx, req)
}
