package source

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/shiftwatch/shiftwatch/internal/logging"
)

// NATSProvider streams observations from a NATS subject. Message payloads
// are decimal-encoded floats; malformed payloads are logged and skipped so
// one bad producer cannot stall a detection run.
type NATSProvider struct {
	conn   *nats.Conn
	sub    *nats.Subscription
	values chan float64
	done   chan struct{}

	closeOnce sync.Once
}

// NewNATSProvider connects to NATS and subscribes to the given subject.
func NewNATSProvider(url, subject string, buffer int) (*NATSProvider, error) {
	if subject == "" {
		return nil, fmt.Errorf("nats subject not configured")
	}
	if buffer <= 0 {
		buffer = 1024
	}

	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	p := &NATSProvider{
		conn:   conn,
		values: make(chan float64, buffer),
		done:   make(chan struct{}),
	}

	sub, err := conn.Subscribe(subject, p.handleMessage)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}
	p.sub = sub

	return p, nil
}

func (p *NATSProvider) handleMessage(msg *nats.Msg) {
	value, err := strconv.ParseFloat(strings.TrimSpace(string(msg.Data)), 64)
	if err != nil {
		logging.Global().Warn("dropping non-numeric observation",
			"subject", msg.Subject, "error", err)
		return
	}
	select {
	case p.values <- value:
	case <-p.done:
	}
}

// Next blocks for the next observation; ok=false once the provider closes.
func (p *NATSProvider) Next() (float64, bool) {
	select {
	case v := <-p.values:
		return v, true
	case <-p.done:
		// Drain anything buffered before signaling exhaustion.
		select {
		case v := <-p.values:
			return v, true
		default:
			return 0, false
		}
	}
}

// Close unsubscribes and ends the stream.
func (p *NATSProvider) Close() error {
	var err error
	p.closeOnce.Do(func() {
		err = p.sub.Unsubscribe()
		close(p.done)
		p.conn.Close()
	})
	return err
}
