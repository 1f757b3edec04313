package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/rousseauplant/plant-cover-api/config"
	"github.com/rousseauplant/plant-cover-api/databases"
	"github.com/rousseauplant/plant-cover-api/models"
)

// Stats exported for testing purposes
type Stats struct {
	CDB databases.CoverDatabase
	RDB databases.ReportDatabase
}

// StatsHandler returns gallery totals for the brand dashboard
func (s Stats) StatsHandler(w http.ResponseWriter, r *http.Request) {
	total, err := s.CDB.CountDocuments(context.TODO(), bson.M{})
	if err != nil {
		config.ErrorStatus("failed to count covers", http.StatusInternalServerError, w, err)
		return
	}
	hidden, err := s.CDB.CountDocuments(context.TODO(), bson.M{"is_hidden": true})
	if err != nil {
		config.ErrorStatus("failed to count hidden covers", http.StatusInternalServerError, w, err)
		return
	}
	reports, err := s.RDB.CountDocuments(context.TODO(), bson.M{})
	if err != nil {
		config.ErrorStatus("failed to count reports", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.GalleryStats{
		TotalCovers:   total,
		VisibleCovers: total - hidden,
		HiddenCovers:  hidden,
		TotalReports:  reports,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
