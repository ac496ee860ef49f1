package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator issues random v4 UUIDs for sign-in events and tokens.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
