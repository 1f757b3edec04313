package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/rousseauplant/plant-cover-api/config"
	"github.com/rousseauplant/plant-cover-api/databases"
	"github.com/rousseauplant/plant-cover-api/models"
)

// defaultPageSize matches the storefront gallery, which loads 12 covers per page
const defaultPageSize = 12

// Cover exported for testing purposes
type Cover struct {
	DB  databases.CoverDatabase
	Hub *LiveHub
}

// CoverHandler returns the visible gallery, newest first. Hidden covers are
// filtered out here and only here; CoverByIDHandler still serves them.
func (c Cover) CoverHandler(w http.ResponseWriter, r *http.Request) {
	limit64 := int64(getLimit(r))
	offset64 := int64(getOffset(r))

	dbResp, err := c.DB.Find(context.TODO(), bson.M{"is_hidden": false}, &options.FindOptions{
		Limit: &limit64,
		Skip:  &offset64,
		Sort:  bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		config.ErrorStatus("failed to get covers", http.StatusInternalServerError, w, err)
		return
	}
	// The storefront detects the end of the gallery by a short page, so an
	// empty result must serialize as [] and not null
	if len(dbResp) == 0 {
		dbResp = []models.Cover{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CoverByIDHandler returns a cover by ID, hidden or not
func (c Cover) CoverByIDHandler(w http.ResponseWriter, r *http.Request) {
	coverID := mux.Vars(r)["cover_id"]

	zap.S().Debugf("cover_id: %v", coverID)

	cID, err := primitive.ObjectIDFromHex(coverID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := c.DB.FindOne(context.Background(), bson.M{"_id": cID})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			config.ErrorStatus("failed to get cover by ID", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get cover by ID", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateCoverHandler publishes a new cover to the gallery
func (c Cover) CreateCoverHandler(w http.ResponseWriter, r *http.Request) {
	var cover models.Cover
	if err := json.NewDecoder(r.Body).Decode(&cover); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	// the photo must already be uploaded, a cover without a photo url is invalid
	if cover.PhotoURL == "" {
		config.ErrorStatus("photo_url is required", http.StatusBadRequest, w, errors.New("missing photo_url"))
		return
	}

	cover.ID = primitive.NewObjectID()
	cover.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	// moderation state is server-owned, whatever the client sent is discarded
	cover.IsReported = false
	cover.ReportCount = 0
	cover.IsHidden = false

	_, err := c.DB.InsertOne(context.TODO(), cover)
	if err != nil {
		config.ErrorStatus("failed to create new cover", http.StatusInternalServerError, w, err)
		return
	}

	c.Hub.EmitCoverCreated(cover)

	b, err := json.Marshal(cover)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

func getLimit(r *http.Request) int {
	limit := defaultPageSize
	if q := r.URL.Query().Get("limit"); q == "" {
		zap.S().Warnf("limit not set, using default of %v", limit)
	} else {
		v, err := strconv.Atoi(q)
		if err != nil {
			zap.S().Errorf("error parsing limit: %v", err)
		} else if v > 0 {
			limit = v
		}
	}
	return limit
}

func getOffset(r *http.Request) int {
	offset := 0
	if q := r.URL.Query().Get("offset"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil {
			zap.S().Errorf("error parsing offset: %v", err)
		} else if v >= 0 {
			offset = v
		}
	}
	return offset
}
