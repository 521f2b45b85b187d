package ports

import "context"

// Registrar performs background installation work at startup
type Registrar interface {
	Register(ctx context.Context) error
}
