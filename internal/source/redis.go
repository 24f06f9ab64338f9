package source

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shiftwatch/shiftwatch/internal/logging"
)

// RedisConfig configures a Redis Streams observation source.
type RedisConfig struct {
	URL      string // Redis URL (e.g., redis://localhost:6379)
	Password string // Optional password
	DB       int    // Database number (default: 0)
	Stream   string // Stream key carrying observations under the "value" field
	Buffer   int    // Internal buffer size (default: 1024)
}

// RedisProvider streams observations from a Redis stream. A plain XREAD is
// used rather than a consumer group: a single consumer reading one stream
// preserves arrival order exactly.
type RedisProvider struct {
	client *redis.Client
	stream string
	values chan float64
	cancel context.CancelFunc

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewRedisProvider connects to Redis and starts reading the stream.
func NewRedisProvider(cfg RedisConfig) (*RedisProvider, error) {
	if cfg.Stream == "" {
		return nil, fmt.Errorf("redis stream not configured")
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = 1024
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		opts = &redis.Options{
			Addr:     cfg.URL,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	client := redis.NewClient(opts)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &RedisProvider{
		client: client,
		stream: cfg.Stream,
		values: make(chan float64, cfg.Buffer),
		cancel: cancel,
	}

	p.wg.Add(1)
	go p.readStream(ctx)

	return p, nil
}

func (p *RedisProvider) readStream(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.values)

	lastID := "0"
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		streams, err := p.client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{p.stream, lastID},
			Count:   100,
			Block:   5 * time.Second,
		}).Result()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if err == redis.Nil {
				continue
			}
			logging.Global().Warn("redis stream read failed", "error", err)
			continue
		}

		for _, s := range streams {
			for _, msg := range s.Messages {
				lastID = msg.ID
				raw, ok := msg.Values["value"].(string)
				if !ok {
					logging.Global().Warn("dropping observation without value field",
						"stream", p.stream, "id", msg.ID)
					continue
				}
				value, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					logging.Global().Warn("dropping non-numeric observation",
						"stream", p.stream, "error", err)
					continue
				}
				select {
				case p.values <- value:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// Next blocks for the next observation; ok=false once the provider closes.
func (p *RedisProvider) Next() (float64, bool) {
	v, ok := <-p.values
	return v, ok
}

// Close stops reading and releases the client.
func (p *RedisProvider) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.cancel()
		p.wg.Wait()
		err = p.client.Close()
	})
	return err
}
