// Package source provides ordered, possibly infinite producers of
// observations for change point detection, behind one pull-based contract.
// In-memory providers serve batch experiments; broker-backed providers
// (NATS, Kafka, Redis Streams) feed live streams to online algorithms.
package source

import (
	"fmt"
	"strings"

	"github.com/shiftwatch/shiftwatch/internal/config"
)

// Provider is a pull-based iterator over a stream of observations.
// Observations arrive in strict order with no duplication or loss; ok=false
// signals exhaustion and is ordinary control flow, not an error.
type Provider interface {
	// Next returns the next observation, or ok=false once the stream ends.
	Next() (value float64, ok bool)
}

// SliceProvider serves observations from an in-memory slice.
type SliceProvider struct {
	values []float64
	pos    int
}

// NewSliceProvider creates a provider over the given values. The slice is
// not copied; callers must not mutate it while the provider is in use.
func NewSliceProvider(values []float64) *SliceProvider {
	return &SliceProvider{values: values}
}

// Next returns the next value in the slice.
func (p *SliceProvider) Next() (float64, bool) {
	if p.pos >= len(p.values) {
		return 0, false
	}
	v := p.values[p.pos]
	p.pos++
	return v, true
}

// Reset rewinds the provider to the beginning of its slice.
func (p *SliceProvider) Reset() {
	p.pos = 0
}

// ChannelProvider serves observations from a channel, blocking until the
// next value arrives or the channel closes.
type ChannelProvider struct {
	values <-chan float64
}

// NewChannelProvider creates a provider reading from the given channel.
func NewChannelProvider(values <-chan float64) *ChannelProvider {
	return &ChannelProvider{values: values}
}

// Next blocks for the next value; ok=false once the channel closes.
func (p *ChannelProvider) Next() (float64, bool) {
	v, ok := <-p.values
	return v, ok
}

// NewProvider creates a Provider based on configuration. Broker-backed
// providers must be closed by the caller; the returned closer is a no-op for
// in-memory types.
func NewProvider(cfg config.SourceConfig) (Provider, func() error, error) {
	sourceType := strings.ToLower(cfg.Type)
	if sourceType == "" {
		sourceType = "memory"
	}

	switch sourceType {
	case "memory":
		return NewSliceProvider(cfg.Values), func() error { return nil }, nil

	case "nats":
		p, err := NewNATSProvider(cfg.URL, cfg.Subject, cfg.Buffer)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil

	case "kafka":
		p, err := NewKafkaProvider(KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			GroupID: cfg.KafkaGroupID,
			Topic:   cfg.Subject,
			Buffer:  cfg.Buffer,
		})
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil

	case "redis":
		p, err := NewRedisProvider(RedisConfig{
			URL:      cfg.URL,
			Password: cfg.Password,
			DB:       cfg.RedisDB,
			Stream:   cfg.Subject,
			Buffer:   cfg.Buffer,
		})
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported source type: %s (supported: memory, nats, kafka, redis)", sourceType)
	}
}
