package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/rousseauplant/plant-cover-api/config"
	"github.com/rousseauplant/plant-cover-api/databases"
	"github.com/rousseauplant/plant-cover-api/models"
)

// hideThreshold is the number of independent reports that hides a cover
const hideThreshold = 2

// defaultReportReason is recorded when the reporter gives no reason
const defaultReportReason = "User reported"

// Report handles cover moderation requests
type Report struct {
	CDB databases.CoverDatabase
	RDB databases.ReportDatabase
	Hub *LiveHub
}

// ReportCoverHandler records a complaint against a cover and enforces the
// auto-hide rule. The report insert is the gate: if it fails nothing else
// happens, and once it has succeeded the complaint is kept even when the
// counter update later fails.
func (re Report) ReportCoverHandler(w http.ResponseWriter, r *http.Request) {
	coverID := r.URL.Query().Get("coverId")
	if coverID == "" {
		config.ErrorStatus("coverId is required", http.StatusBadRequest, w, errors.New("missing coverId"))
		return
	}

	// reason is optional, an empty or absent body falls back to the default
	var body struct {
		Reason string `json:"reason"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	reason := body.Reason
	if reason == "" {
		reason = defaultReportReason
	}

	report := models.Report{
		ID:         primitive.NewObjectID(),
		CoverID:    coverID,
		Reason:     reason,
		ReporterIP: reporterHint(r),
		CreatedAt:  primitive.NewDateTimeFromTime(time.Now()),
	}

	if _, err := re.RDB.InsertOne(context.TODO(), report); err != nil {
		config.ErrorStatus("failed to record report", http.StatusInternalServerError, w, err)
		return
	}

	cID, err := primitive.ObjectIDFromHex(coverID)
	if err != nil {
		// no cover can exist under a malformed id, the complaint itself is
		// already on file so count it as the first
		zap.S().Warnw("report filed against unknown cover id", "coverId", coverID)
		writeReportResponse(w, models.ReportCoverResponse{Success: true, Hidden: false, ReportCount: 1})
		return
	}

	// Increment the counter and recompute the hidden flag in a single
	// pipeline update so concurrent reports cannot lose an increment.
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "report_count", Value: bson.D{{Key: "$add", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$report_count", 0}}},
				1,
			}}}},
			{Key: "is_reported", Value: true},
		}}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "is_hidden", Value: bson.D{{Key: "$gte", Value: bson.A{"$report_count", hideThreshold}}}},
		}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	updated, err := re.CDB.FindOneAndUpdate(context.TODO(), bson.M{"_id": cID}, update, opts)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// the cover is gone but the complaint stays recorded
			zap.S().Warnw("report filed against missing cover", "coverId", coverID)
			writeReportResponse(w, models.ReportCoverResponse{Success: true, Hidden: false, ReportCount: 1})
			return
		}
		// the report record above remains persisted on purpose, a complaint
		// is never dropped because the counter update was lost
		config.ErrorStatus("failed to update cover", http.StatusInternalServerError, w, err)
		return
	}

	if updated.IsHidden && updated.ReportCount == hideThreshold {
		re.Hub.EmitCoverHidden(updated.ID.Hex())
		zap.S().Infow("cover hidden by report threshold",
			"coverId", updated.ID.Hex(),
			"reportCount", updated.ReportCount,
		)
	}

	writeReportResponse(w, models.ReportCoverResponse{
		Success:     true,
		Hidden:      updated.IsHidden,
		ReportCount: updated.ReportCount,
	})
}

func writeReportResponse(w http.ResponseWriter, resp models.ReportCoverResponse) {
	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// reporterHint is a best-effort origin of the reporter, advisory only
func reporterHint(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return r.RemoteAddr
}
