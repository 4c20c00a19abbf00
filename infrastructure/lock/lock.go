package lock

import (
	"context"
	"errors"
	"time"
)

// ErrNotAcquired indica que outra execução ainda detém a trava
var ErrNotAcquired = errors.New("trava já está em uso")

type Lock interface {
	Key() string
	Release(ctx context.Context) error
}

// Locker implementa um mutex nomeado com expiração
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (Lock, error)
}
