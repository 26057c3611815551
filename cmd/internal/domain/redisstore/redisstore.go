// Package redisstore keeps the serialized salon snapshot in a Redis string.
package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type Options struct {
	Addr     string
	Password string
	DB       int
}

// Connect builds a client and pings it once so a bad address fails at
// startup instead of on the first write.
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// Persister implements store.Persister on top of GET and SET.
type Persister struct {
	client *redis.Client
	key    string
}

func New(client *redis.Client, key string) *Persister {
	return &Persister{client: client, key: key}
}

func (p *Persister) Load(ctx context.Context) ([]byte, error) {
	blob, err := p.client.Get(ctx, p.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return blob, err
}

func (p *Persister) Save(ctx context.Context, blob []byte) error {
	return p.client.Set(ctx, p.key, blob, 0).Err()
}
