package health

import "context"

// EnginePinger checks storage engine availability.
type EnginePinger interface {
	Ping(ctx context.Context) error
}
