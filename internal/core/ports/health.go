package ports

import "context"

// HealthChecker reports liveness of a dependency.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}
