package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	appLog "github.com/five82/tzboard/internal/log"
)

// StartTicker calls fn with the wall clock on every activation of the cron
// schedule. It returns immediately; the schedule stops when ctx is cancelled.
func StartTicker(ctx context.Context, schedule string, fn func(time.Time)) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { fn(time.Now()) }); err != nil {
		return fmt.Errorf("parse tick schedule %q: %w", schedule, err)
	}
	c.Start()
	appLog.Debug("tick source started", "schedule", schedule)

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		appLog.Debug("tick source stopped")
	}()
	return nil
}
