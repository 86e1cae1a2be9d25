package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated counts placed orders by payment method.
	OrdersCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "canteen_orders_created_total",
		Help: "Number of orders created",
	}, []string{"payment_method"})

	// OrdersCancelled counts cancelled orders.
	OrdersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "canteen_orders_cancelled_total",
		Help: "Number of orders cancelled",
	})

	// WalletOperations counts ledger mutations by type.
	WalletOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "canteen_wallet_operations_total",
		Help: "Number of wallet credits and debits",
	}, []string{"type"})

	// WellnessRepairs counts orders repaired by the reconciliation sweep.
	WellnessRepairs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "canteen_wellness_repairs_total",
		Help: "Number of orders whose wellness stats were applied by the sweep",
	})

	// SweepErrors counts sweep iterations that hit an error.
	SweepErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "canteen_wellness_sweep_errors_total",
		Help: "Number of errors encountered by the reconciliation sweep",
	})
)
