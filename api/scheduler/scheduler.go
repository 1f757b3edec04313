// Package scheduler runs the periodic moderation jobs for the cover gallery.
package scheduler

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/rousseauplant/plant-cover-api/databases"
	"github.com/rousseauplant/plant-cover-api/models"
	templates "github.com/rousseauplant/plant-cover-api/templates/html"
)

// Scheduler handles periodic background jobs for gallery moderation
type Scheduler struct {
	cron            *cron.Cron
	CDB             databases.CoverDatabase
	RDB             databases.ReportDatabase
	moderationEmail string
	instanceID      string
}

// NewScheduler creates a new scheduler instance
func NewScheduler(cdb databases.CoverDatabase, rdb databases.ReportDatabase, moderationEmail string) *Scheduler {
	// Generate a unique instance ID for this pod
	instanceID := os.Getenv("DYNO") // Heroku sets this to "web.1", "web.2", etc.
	if instanceID == "" {
		instanceID = fmt.Sprintf("instance-%d", time.Now().UnixNano())
	}

	return &Scheduler{
		cron:            cron.New(cron.WithLocation(time.UTC)),
		CDB:             cdb,
		RDB:             rdb,
		moderationEmail: moderationEmail,
		instanceID:      instanceID,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Send the moderation digest daily at 8 AM UTC, before the brand team's workday
	_, err := s.cron.AddFunc("0 8 * * *", s.sendModerationDigest)
	if err != nil {
		zap.S().Errorw("failed to register moderation digest job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Moderation scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Moderation scheduler stopped")
}

// sendModerationDigest mails the brand team a summary of the reports filed in
// the last day plus the overall hidden-cover tally
func (s *Scheduler) sendModerationDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if os.Getenv("SENDGRID_API_KEY") == "" || s.moderationEmail == "" {
		zap.S().Debug("moderation digest disabled, sendgrid or inbox not configured")
		return
	}

	zap.S().Infow("Running moderation digest job", "instance", s.instanceID)

	since := time.Now().Add(-24 * time.Hour)
	reports, err := s.RDB.Find(ctx, bson.M{
		"created_at": bson.M{"$gt": primitive.NewDateTimeFromTime(since)},
	})
	if err != nil {
		zap.S().Errorw("failed to find recent reports", "error", err)
		return
	}

	hiddenTotal, err := s.CDB.CountDocuments(ctx, bson.M{"is_hidden": true})
	if err != nil {
		zap.S().Errorw("failed to count hidden covers", "error", err)
		return
	}

	if len(reports) == 0 && hiddenTotal == 0 {
		zap.S().Info("Nothing to report, skipping moderation digest")
		return
	}

	subject := "Cover gallery moderation digest"
	body := BuildDigestBody(reports, hiddenTotal)

	if err := s.sendEmail(s.moderationEmail, subject, body); err != nil {
		zap.S().Errorw("failed to send moderation digest", "error", err)
		return
	}

	zap.S().Infow("Moderation digest sent",
		"recentReports", len(reports),
		"hiddenCovers", hiddenTotal,
	)
}

// BuildDigestBody renders the plain-text digest. Exported so the formatting
// can be tested without a sendgrid key.
func BuildDigestBody(reports []models.Report, hiddenTotal int64) string {
	perCover := map[string]int{}
	for _, r := range reports {
		perCover[r.CoverID]++
	}

	coverIDs := make([]string, 0, len(perCover))
	for id := range perCover {
		coverIDs = append(coverIDs, id)
	}
	sort.Strings(coverIDs)

	body := fmt.Sprintf("Reports in the last 24 hours: %d\nCovers currently hidden: %d\n", len(reports), hiddenTotal)
	if len(coverIDs) > 0 {
		body += "\nReported covers:\n"
		for _, id := range coverIDs {
			body += fmt.Sprintf("  - cover %s: %d report(s)\n", id, perCover[id])
		}
	}
	return body
}

func (s *Scheduler) sendEmail(toEmail, subject, plainText string) error {
	htmlContent := templates.RenderGenericEmail(subject, plainText)

	from := mail.NewEmail("Rousseau Plant Care", "no-reply@rousseauplant.care")
	to := mail.NewEmail("Moderation", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}
