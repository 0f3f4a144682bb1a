// Package cache fronts the Redis connection that the Core server bootstrap
// opens when caching is enabled.
package cache

import (
	"context"
	"net/http"

	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	"github.com/gin-gonic/gin"
)

type Cache interface {
	// Get decodes the cached value for key into dest and reports whether the
	// key existed.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

// Redis stores values through the Core redis helpers under Prefix+key.
type Redis struct {
	Prefix string
}

func NewRedis(prefix string) *Redis {
	return &Redis{Prefix: prefix}
}

func (r *Redis) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return redis.GetCache(ginContext(ctx), r.Prefix+key, dest)
}

func (r *Redis) Set(ctx context.Context, key string, value interface{}) error {
	return redis.SetCache(ginContext(ctx), r.Prefix+key, value)
}

// ginContext hands the Core helpers the request context shape they are called
// with from handlers. ctx stays reachable through the request.
func ginContext(ctx context.Context) *gin.Context {
	if gc, ok := ctx.(*gin.Context); ok {
		return gc
	}
	if ctx == nil {
		ctx = context.Background()
	}
	// method and URL are constant, so only a nil ctx could fail here
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
	return &gin.Context{Request: req}
}

// Noop never holds anything. It is used when caching is disabled.
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (Noop) Set(context.Context, string, interface{}) error { return nil }
