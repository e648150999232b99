package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
)

// EndpointSecurityConfig maps gRPC methods to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	"/grpc.health.v1.Health/Check": SecurityPublic,
	"/grpc.health.v1.Health/Watch": SecurityPublic,

	// BookingService - Access Protected
	"/farmrent.v1.BookingService/CreateBooking":      SecurityAccess,
	"/farmrent.v1.BookingService/GetBooking":         SecurityAccess,
	"/farmrent.v1.BookingService/AcceptBooking":      SecurityAccess,
	"/farmrent.v1.BookingService/RejectBooking":      SecurityAccess,
	"/farmrent.v1.BookingService/ListRenterBookings": SecurityAccess,
	"/farmrent.v1.BookingService/ListOwnerBookings":  SecurityAccess,
}

// GetSecurityLevel returns the security level for a given method
func GetSecurityLevel(method string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[method]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAccess
}
