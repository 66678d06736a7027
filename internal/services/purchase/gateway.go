package purchase

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Payload is the category-specific request forwarded to the VTU provider.
type Payload struct {
	ServiceType string
	Recipient   string
	Provider    string
	Plan        string
	Amount      float64
}

// Gateway is the single external I/O boundary of the purchase workflow. It
// can be slow and can fail independently of input validity; failures are
// transient and must not be retried within the request.
type Gateway interface {
	Purchase(ctx context.Context, p Payload) (reference string, err error)
}

// GatewayConfig tunes the simulated provider.
type GatewayConfig struct {
	Latency     time.Duration // simulated round-trip, default 2s
	FailureRate float64       // transient failure probability, default 0.05
}

type vtuGateway struct {
	latency     time.Duration
	failureRate float64
}

// NewVTUGateway creates the mock provider client. It simulates latency and
// a small random transient failure rate; a real integration would replace
// this implementation behind the same interface.
func NewVTUGateway(cfg GatewayConfig) Gateway {
	if cfg.Latency <= 0 {
		cfg.Latency = 2 * time.Second
	}
	if cfg.FailureRate <= 0 {
		cfg.FailureRate = 0.05
	}
	return &vtuGateway{
		latency:     cfg.Latency,
		failureRate: cfg.FailureRate,
	}
}

func (g *vtuGateway) Purchase(ctx context.Context, p Payload) (string, error) {
	timer := time.NewTimer(g.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return "", &ProviderError{Reason: "Provider request timed out. Please try again."}
	}

	if rand.Float64() < g.failureRate {
		return "", &ProviderError{Reason: "Service temporarily unavailable. Please try again."}
	}

	return fmt.Sprintf("SRV%d%s", time.Now().UnixMilli(), randomSuffix(5)), nil
}
