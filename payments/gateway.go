package payments

import (
	"context"
	"log"
	"time"

	"github.com/globalscholars/study_abroad/utils"
)

// Gateway charges a payment and returns the reference to store on the
// enrollment. Implementations decide how (or whether) money actually moves.
type Gateway interface {
	Charge(ctx context.Context, amount float64, method, transactionID string) (string, error)
}

// DemoGateway is a stand-in for a real payment provider: it waits for a
// fixed delay and then reports success unconditionally. Swap in a real
// Gateway implementation to integrate an actual provider; the enrollment
// state machine does not change.
type DemoGateway struct {
	Delay time.Duration
}

func NewDemoGateway(delayMs int) *DemoGateway {
	return &DemoGateway{Delay: time.Duration(delayMs) * time.Millisecond}
}

func (g *DemoGateway) Charge(ctx context.Context, amount float64, method, transactionID string) (string, error) {
	select {
	case <-time.After(g.Delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	reference := utils.PaymentReference(method, transactionID)
	log.Printf("Demo gateway: charged %.2f via %q, reference %s", amount, method, reference)
	return reference, nil
}
