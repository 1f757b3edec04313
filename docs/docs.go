// Package docs Rousseau Plant Cover API.
//
// Documentation of the Rousseau plant cover gallery API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//     Host: https://plant-cover-api.herokuapp.com
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package docs

import (
	"github.com/rousseauplant/plant-cover-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/v1/covers covers listCovers
// Lists the visible cover gallery, newest first.
// responses:
//   200: listCoversResponse

// The visible covers for the requested offset/limit window.
// swagger:response listCoversResponse
type listCoversResponseWrapper struct {
	// in:body
	Body []models.Cover
}

// swagger:route POST /api/v1/covers covers createCover
// Publishes a new cover to the gallery.
// responses:
//   201: createCoverResponse

// The created cover including its assigned id and timestamp.
// swagger:response createCoverResponse
type createCoverResponseWrapper struct {
	// in:body
	Body models.Cover
}

// swagger:route GET /api/v1/cover/{cover_id} covers coverByID
// Gets a single cover by ID, hidden covers included.
// responses:
//   200: coverByIDResponse

// Shows a single cover by the given {ID}
// swagger:response coverByIDResponse
type coverByIDResponseWrapper struct {
	// in:body
	Body models.Cover
}

// swagger:route POST /api/v1/covers/report moderation reportCover
// Files a complaint against a cover; two independent reports hide it.
// responses:
//   200: reportCoverResponse

// The moderation outcome for the reported cover.
// swagger:response reportCoverResponse
type reportCoverResponseWrapper struct {
	// in:body
	Body models.ReportCoverResponse
}

// swagger:route POST /api/v1/upload upload uploadImage
// Uploads a base64 encoded photo and returns its hosted url.
// responses:
//   200: uploadResponse

// The hosted photo url and its public id.
// swagger:response uploadResponse
type uploadResponseWrapper struct {
	// in:body
	Body models.UploadResponse
}

// swagger:route GET /api/v1/stats stats galleryStats
// Returns gallery totals for the brand dashboard.
// responses:
//   200: galleryStatsResponse

// Totals for covers, hidden covers and reports.
// swagger:response galleryStatsResponse
type galleryStatsResponseWrapper struct {
	// in:body
	Body models.GalleryStats
}
