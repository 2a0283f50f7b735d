package visits

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Cleaner deletes visits past the retention window on a cron schedule.
type Cleaner struct {
	store  *Store
	maxAge time.Duration
	cron   *cron.Cron
}

// NewCleaner schedules cleanup of store on spec, e.g. "@daily". Call Start
// to begin and Stop to end.
func NewCleaner(store *Store, spec string, maxAge time.Duration) (*Cleaner, error) {
	cl := &Cleaner{store: store, maxAge: maxAge, cron: cron.New()}
	if _, err := cl.cron.AddFunc(spec, cl.Run); err != nil {
		return nil, fmt.Errorf("visits: scheduling cleanup: %w", err)
	}
	return cl, nil
}

// Run performs one cleanup pass.
func (cl *Cleaner) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := cl.store.Cleanup(ctx, cl.maxAge)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than %s", removed, cl.maxAge)
	}
}

func (cl *Cleaner) Start() {
	cl.cron.Start()
}

// Stop waits for a running pass to finish.
func (cl *Cleaner) Stop() {
	<-cl.cron.Stop().Done()
}
