// Package ratelimit limita tentativas de login por chave (IP do cliente).
package ratelimit

import "context"

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
