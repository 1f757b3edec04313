package models

// HealthCheckResponse reports whether the api is alive
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// UploadResponse is returned after an image has been pushed to the image host.
type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// GalleryStats summarizes the gallery for the brand dashboard and the
// moderation digest.
type GalleryStats struct {
	TotalCovers   int64 `json:"total_covers"`
	VisibleCovers int64 `json:"visible_covers"`
	HiddenCovers  int64 `json:"hidden_covers"`
	TotalReports  int64 `json:"total_reports"`
}
