// Package scheduler runs the daily maintenance job: flagging lapsed
// vaccinations as overdue and refreshing the low feed stock gauge.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"farmledger/internal/logger"
	"farmledger/internal/services"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron         *cron.Cron
	spec         string
	vaccinations services.VaccinationServicer
	feedStocks   services.FeedStockServicer
	log          *zap.SugaredLogger
	now          func() time.Time
}

// New creates a scheduler that runs the maintenance job on the given
// five-field cron spec, for example "0 5 * * *".
func New(spec string, vaccinations services.VaccinationServicer, feedStocks services.FeedStockServicer) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		spec:         spec,
		vaccinations: vaccinations,
		feedStocks:   feedStocks,
		log:          logger.Named("scheduler"),
		now:          time.Now,
	}
}

// Start registers the maintenance job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.RunMaintenance); err != nil {
		return fmt.Errorf("invalid scheduler spec %q: %w", s.spec, err)
	}
	s.log.Infow("starting scheduler", "spec", s.spec)
	s.cron.Start()
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.log.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

// RunMaintenance marks lapsed vaccinations overdue and rescans feed stock.
// A failing step is logged and does not prevent the other.
func (s *Scheduler) RunMaintenance() {
	marked, err := s.vaccinations.MarkOverdue(s.now())
	if err != nil {
		s.log.Errorw("failed to mark overdue vaccinations", "error", err)
	} else {
		s.log.Infow("overdue vaccinations marked", "count", marked)
	}

	low, err := s.feedStocks.GetLowStock()
	if err != nil {
		s.log.Errorw("failed to scan feed stock", "error", err)
		return
	}
	for _, feed := range low {
		s.log.Warnw("feed stock low",
			"feed_stock_id", feed.ID,
			"name", feed.Name,
			"stock_quantity", feed.StockQuantity.String(),
			"remaining_percent", feed.RemainingPercent.String(),
		)
	}
}
