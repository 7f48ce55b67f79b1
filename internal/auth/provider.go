package auth

import (
	"context"

	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
)

type Provider interface {
	ValidateTokenLocal(token string) (*internal.User, error)
	ValidateTokenRemote(ctx context.Context, token string) (*internal.User, error)
}
