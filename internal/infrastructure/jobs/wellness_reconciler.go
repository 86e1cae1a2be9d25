package jobs

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"

	"campus-canteen.backend/internal/domain/entities"
	"campus-canteen.backend/internal/usecases"
	"campus-canteen.backend/pkg/metrics"
)

// orderFinder is the slice of the order repository the sweep needs.
type orderFinder interface {
	FindWellnessUnprocessed(ctx context.Context, limit int) ([]*entities.Order, error)
}

// WellnessReconcilerJob periodically finds countable orders whose wellness
// stats were never applied and pushes them through the same application
// path the request handlers use. Reruns are safe: the per-order claim makes
// application idempotent.
type WellnessReconcilerJob struct {
	orders     orderFinder
	wellnessUC *usecases.WellnessUsecase
	interval   time.Duration
	batchSize  int
	stop       chan struct{}
	running    atomic.Bool
}

func NewWellnessReconcilerJob(orders orderFinder, wellnessUC *usecases.WellnessUsecase, interval time.Duration, batchSize int) *WellnessReconcilerJob {
	return &WellnessReconcilerJob{
		orders:     orders,
		wellnessUC: wellnessUC,
		interval:   interval,
		batchSize:  batchSize,
		stop:       make(chan struct{}),
	}
}

func (j *WellnessReconcilerJob) Start(ctx context.Context) {
	log.Println("🕐 Starting wellness reconciliation sweep...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Wellness reconciliation sweep stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Wellness reconciliation sweep stopped")
			return
		case <-ticker.C:
			j.RunOnce(ctx)
		}
	}
}

func (j *WellnessReconcilerJob) Stop() {
	close(j.stop)
}

// RunOnce performs a single sweep iteration. A slow iteration is never
// overlapped by the next tick.
func (j *WellnessReconcilerJob) RunOnce(ctx context.Context) {
	if !j.running.CompareAndSwap(false, true) {
		return
	}
	defer j.running.Store(false)

	var pending []*entities.Order
	// The fetch retries briefly; a database blip should not cost a whole tick.
	backoff := retry.WithMaxRetries(3, retry.NewConstant(time.Second))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var fetchErr error
		pending, fetchErr = j.orders.FindWellnessUnprocessed(ctx, j.batchSize)
		if fetchErr != nil {
			return retry.RetryableError(fetchErr)
		}
		return nil
	})
	if err != nil {
		metrics.SweepErrors.Inc()
		log.Printf("❌ Error fetching unprocessed orders: %v", err)
		return
	}

	if len(pending) == 0 {
		return
	}

	log.Printf("🔄 Repairing wellness stats for %d orders...", len(pending))

	repaired := 0
	for _, order := range pending {
		applied, applyErr := j.wellnessUC.ApplyOrder(ctx, order)
		if applyErr != nil {
			metrics.SweepErrors.Inc()
			log.Printf("❌ Error applying wellness stats for order %s: %v", order.OrderNumber, applyErr)
			continue
		}
		if applied {
			repaired++
			metrics.WellnessRepairs.Inc()
		}
	}

	log.Printf("✅ Repaired wellness stats for %d orders", repaired)
}
