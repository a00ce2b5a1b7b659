package scheduling

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"invoicer/internal/usecase"

	"github.com/robfig/cron/v3"
)

// CronRunner drives the two periodic jobs of the reminder engine:
//   - process-due: dispatch scheduled reminders whose time has come
//   - derive-all: sweep unpaid invoices and materialize missing reminders
//
// Env vars:
//   - CRON_SPEC_PROCESS_DUE (default: "* * * * *")
//   - CRON_SPEC_DERIVE_ALL  (default: "0 * * * *")
//   - CRON_JOB_TIMEOUT      (default: "5m")
type CronRunner struct {
	cron       *cron.Cron
	scheduler  usecase.IReminderSchedulerUseCase
	jobTimeout time.Duration
}

func NewCronRunner(scheduler usecase.IReminderSchedulerUseCase) *CronRunner {
	timeout := 5 * time.Minute
	if v := os.Getenv("CRON_JOB_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			timeout = parsed
		}
	}
	return &CronRunner{
		cron:       cron.New(),
		scheduler:  scheduler,
		jobTimeout: timeout,
	}
}

func (r *CronRunner) Start() error {
	processSpec := getenvDefault("CRON_SPEC_PROCESS_DUE", "* * * * *")
	deriveSpec := getenvDefault("CRON_SPEC_DERIVE_ALL", "0 * * * *")

	if _, err := r.cron.AddFunc(processSpec, r.runProcessDue); err != nil {
		return err
	}
	if _, err := r.cron.AddFunc(deriveSpec, r.runDeriveAll); err != nil {
		return err
	}

	r.cron.Start()
	log.Printf("[scheduler][cron] started process_due=%q derive_all=%q", processSpec, deriveSpec)
	return nil
}

// Stop halts scheduling and waits for running jobs to finish.
func (r *CronRunner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	log.Printf("[scheduler][cron] stopped")
}

func (r *CronRunner) runProcessDue() {
	ctx, cancel := context.WithTimeout(context.Background(), r.jobTimeout)
	defer cancel()

	report, err := r.scheduler.ProcessDue(ctx)
	if err != nil {
		if errors.Is(err, usecase.ErrProcessingInProgress) {
			// Previous tick still running; the next one will catch up.
			log.Printf("[scheduler][cron] process-due skipped, previous run still active")
			return
		}
		log.Printf("[scheduler][cron] process-due failed err=%v", err)
		return
	}
	if report.Processed > 0 {
		log.Printf("[scheduler][cron] process-due tick processed=%d sent=%d retried=%d failed=%d", report.Processed, report.Sent, report.Retried, report.Failed)
	}
}

func (r *CronRunner) runDeriveAll() {
	ctx, cancel := context.WithTimeout(context.Background(), r.jobTimeout)
	defer cancel()

	created, err := r.scheduler.ScheduleForUnpaidInvoices(ctx)
	if err != nil {
		log.Printf("[scheduler][cron] derive-all failed err=%v", err)
		return
	}
	if created > 0 {
		log.Printf("[scheduler][cron] derive-all tick created=%d", created)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
