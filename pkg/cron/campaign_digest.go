package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/VinodVen/growthai/internal/repository"
)

const digestWindow = 24 * time.Hour

type DigestMailer interface {
	SendCampaignDigest(ctx context.Context, to, businessName string, count int64, date time.Time) error
}

// CampaignDigest emails every pro business the number of campaigns it
// generated during the last 24 hours.
type CampaignDigest struct {
	Businesses repository.BusinessRepositoryInterface
	Campaigns  repository.CampaignRepositoryInterface
	Mailer     DigestMailer
	Now        func() time.Time
}

// Run returns the number of digests sent. A failed email is logged and the
// remaining businesses are still processed.
func (d *CampaignDigest) Run(ctx context.Context) (int, error) {
	now := time.Now()
	if d.Now != nil {
		now = d.Now()
	}
	log.Printf("Running campaign digest for %s", now.Format("2006-01-02"))

	counts, err := d.Campaigns.CountByBusiness(ctx, now.Add(-digestWindow))
	if err != nil {
		return 0, err
	}
	if len(counts) == 0 {
		log.Println("No campaigns in the last 24 hours, skipping digest")
		return 0, nil
	}

	businesses, err := d.Businesses.List(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, b := range businesses {
		count := counts[b.ID]
		if count == 0 || !b.IsPro() {
			continue
		}

		if err := d.Mailer.SendCampaignDigest(ctx, b.Email, b.BusinessName, count, now); err != nil {
			log.Printf("Error sending campaign digest to %s: %v", b.Email, err)
			continue
		}
		sent++
	}

	log.Printf("Sent %d campaign digest(s)", sent)
	return sent, nil
}

// InitCampaignDigestCron schedules job with a standard cron expression. Overlapping runs are skipped.
func InitCampaignDigestCron(schedule string, job *CampaignDigest) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() {
		if _, err := job.Run(context.Background()); err != nil {
			log.Printf("Campaign digest failed: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("Campaign digest cron initialized with schedule %q", schedule)
	return c, nil
}
