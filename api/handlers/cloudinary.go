package handlers

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/rousseauplant/plant-cover-api/config"
	"github.com/rousseauplant/plant-cover-api/models"
)

const (
	// uploadFolder groups all cover photos in the Cloudinary media library
	uploadFolder = "rousseau-review"

	// coverTransformation crops to the 3:4 cover portrait and lets
	// Cloudinary pick the compression level
	coverTransformation = "w_800,h_1067,c_fill/q_auto:good"
)

var dataURLPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

// CloudinaryHandler handles Cloudinary related requests
type CloudinaryHandler struct{}

// UploadImageHandler pushes a base64 encoded photo to Cloudinary and returns
// the hosted url to use as a cover's photo_url. The fixed transformation is
// applied at upload time so every stored photo is already cover-shaped.
func (c CloudinaryHandler) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Image string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if body.Image == "" {
		config.ErrorStatus("image is required", http.StatusBadRequest, w, errors.New("missing image"))
		return
	}

	// the canvas sends a data URL, strip the prefix before forwarding
	imageData := dataURLPrefix.ReplaceAllString(body.Image, "")

	cld, err := cloudinary.New() // configured through CLOUDINARY_URL
	if err != nil {
		config.ErrorStatus("failed to initialize image host client", http.StatusInternalServerError, w, err)
		return
	}

	resp, err := cld.Upload.Upload(r.Context(), "data:image/jpeg;base64,"+imageData, uploader.UploadParams{
		Folder:         uploadFolder,
		Transformation: coverTransformation,
	})
	if err != nil {
		config.ErrorStatus("failed to upload image", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.UploadResponse{URL: resp.SecureURL, PublicID: resp.PublicID})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// GenerateSignature generates a signature for direct browser uploads, so the
// storefront embed can talk to Cloudinary without routing photo bytes
// through this api
func (c CloudinaryHandler) GenerateSignature(w http.ResponseWriter, r *http.Request) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	uploadPreset := os.Getenv("CLOUDINARY_UPLOAD_PRESET")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	// Create the signature over the same params the browser will send
	h := hmac.New(sha1.New, []byte(apiSecret))
	h.Write([]byte("folder=" + uploadFolder + "&timestamp=" + timestamp + "&upload_preset=" + uploadPreset))
	signature := hex.EncodeToString(h.Sum(nil))

	response := map[string]string{
		"timestamp": timestamp,
		"signature": signature,
		"folder":    uploadFolder,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
