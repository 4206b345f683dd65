package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Rithvik0410/E-commerce-Incture/models"
)

// Gateway decides the outcome of a payment attempt. The production wiring
// uses SimulatedGateway; tests substitute a deterministic implementation.
type Gateway interface {
	Authorize(ctx context.Context, payment *models.Payment) (bool, error)
}

// SimulatedGateway stands in for a real payment service provider and
// approves attempts with a fixed probability, drawn independently per call.
type SimulatedGateway struct {
	SuccessRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulatedGateway(successRate float64) *SimulatedGateway {
	return &SimulatedGateway{
		SuccessRate: successRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *SimulatedGateway) Authorize(_ context.Context, _ *models.Payment) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64() < g.SuccessRate, nil
}
