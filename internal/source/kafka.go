package source

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/shiftwatch/shiftwatch/internal/logging"
)

// KafkaConfig configures a Kafka-backed observation stream.
type KafkaConfig struct {
	Brokers []string // Kafka broker addresses
	GroupID string   // Consumer group ID (default: "shiftwatch-group")
	Topic   string   // Topic carrying decimal-encoded observations
	Buffer  int      // Internal buffer size (default: 1024)
}

// KafkaProvider streams observations from a single-partition Kafka topic.
// A single partition is required: consuming multiple partitions would not
// preserve arrival order, which the detection engine depends on.
type KafkaProvider struct {
	reader *kafka.Reader
	values chan float64
	cancel context.CancelFunc

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewKafkaProvider creates a Kafka provider and starts consuming.
func NewKafkaProvider(cfg KafkaConfig) (*KafkaProvider, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers not configured")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka topic not configured")
	}
	if cfg.GroupID == "" {
		cfg.GroupID = "shiftwatch-group"
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = 1024
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        1 * time.Second,
		CommitInterval: time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	p := &KafkaProvider{
		reader: reader,
		values: make(chan float64, cfg.Buffer),
		cancel: cancel,
	}

	p.wg.Add(1)
	go p.consume(ctx)

	return p, nil
}

func (p *KafkaProvider) consume(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.values)

	for {
		msg, err := p.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logging.Global().Warn("kafka read failed", "error", err)
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(string(msg.Value)), 64)
		if err != nil {
			logging.Global().Warn("dropping non-numeric observation",
				"topic", msg.Topic, "error", err)
			continue
		}

		select {
		case p.values <- value:
		case <-ctx.Done():
			return
		}
	}
}

// Next blocks for the next observation; ok=false once the provider closes.
func (p *KafkaProvider) Next() (float64, bool) {
	v, ok := <-p.values
	return v, ok
}

// Close stops consuming and releases the reader.
func (p *KafkaProvider) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.cancel()
		err = p.reader.Close()
		p.wg.Wait()
	})
	return err
}
