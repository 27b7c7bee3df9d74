package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/enesocakci/portfolio-backend/internal/projects/domain"
)

// Store is the persistence surface the reconciler needs.
type Store interface {
	List(ctx context.Context) ([]domain.Project, error)
	CountLikes(ctx context.Context, projectID string) (int64, error)
	SetLikes(ctx context.Context, projectID string, likes int64) error
}

// Reconciler repairs like counters that drifted from the like records. The
// like transaction keeps new writes consistent; this job compensates for
// counters inflated by the historical non-transactional implementation.
type Reconciler struct {
	store Store
}

func New(store Store) *Reconciler {
	return &Reconciler{store: store}
}

// Run recounts like records for every project and overwrites counters that
// disagree. Returns the number of repaired projects.
func (r *Reconciler) Run(ctx context.Context) (int, error) {
	projects, err := r.store.List(ctx)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, p := range projects {
		n, err := r.store.CountLikes(ctx, p.ID)
		if err != nil {
			slog.Error("like recount failed", "project", p.ID, "error", err)
			continue
		}
		if n == p.Likes {
			continue
		}

		if err := r.store.SetLikes(ctx, p.ID, n); err != nil {
			slog.Error("like counter repair failed", "project", p.ID, "error", err)
			continue
		}
		slog.Info("like counter repaired", "project", p.ID, "was", p.Likes, "now", n)
		repaired++
	}
	return repaired, nil
}

// Start schedules Run on the given cron spec (with a seconds field) and
// returns the started scheduler.
func (r *Reconciler) Start(spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if _, err := r.Run(ctx); err != nil {
			slog.Error("like reconciliation failed", "error", err)
		}
	})
	if err != nil {
		return nil, err
	}

	slog.Info("like reconciliation scheduled", "spec", spec)
	c.Start()
	return c, nil
}
