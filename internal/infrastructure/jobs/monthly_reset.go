package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"campus-canteen.backend/internal/usecases"
)

// MonthlyResetJob zeroes every wallet's month-spent counter on a cron
// schedule, by default at midnight on the first of each month.
type MonthlyResetJob struct {
	walletUC *usecases.WalletUsecase
	spec     string
	cron     *cron.Cron
}

func NewMonthlyResetJob(walletUC *usecases.WalletUsecase, spec string) *MonthlyResetJob {
	return &MonthlyResetJob{
		walletUC: walletUC,
		spec:     spec,
		cron:     cron.New(),
	}
}

func (j *MonthlyResetJob) Start(ctx context.Context) error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.RunOnce(ctx)
	})
	if err != nil {
		return err
	}
	j.cron.Start()
	log.Printf("🕐 Monthly budget reset scheduled (%s)", j.spec)
	return nil
}

func (j *MonthlyResetJob) Stop() {
	j.cron.Stop()
}

// RunOnce resets all wallets immediately.
func (j *MonthlyResetJob) RunOnce(ctx context.Context) {
	affected, err := j.walletUC.ResetAllMonthlySpending(ctx)
	if err != nil {
		log.Printf("❌ Error resetting monthly spending: %v", err)
		return
	}
	log.Printf("✅ Reset monthly spending for %d wallets", affected)
}
