package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rousseauplant/plant-cover-api/api"
	"github.com/rousseauplant/plant-cover-api/api/scheduler"
	"github.com/rousseauplant/plant-cover-api/config"
	"github.com/rousseauplant/plant-cover-api/databases"
	"github.com/rousseauplant/plant-cover-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Hub       *LiveHub
	dbHelper  databases.DatabaseHelper
	scheduler *scheduler.Scheduler
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	if a.Hub == nil {
		a.Hub = NewLiveHub()
	}

	r := mux.NewRouter()

	c := Cover{DB: databases.NewCoverDatabase(a.dbHelper), Hub: a.Hub}
	report := Report{CDB: databases.NewCoverDatabase(a.dbHelper), RDB: databases.NewReportDatabase(a.dbHelper), Hub: a.Hub}
	stats := Stats{CDB: databases.NewCoverDatabase(a.dbHelper), RDB: databases.NewReportDatabase(a.dbHelper)}
	cloudinaryHandler := CloudinaryHandler{}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/covers", api.Middleware(http.HandlerFunc(c.CoverHandler))).Methods("GET", "OPTIONS")
	apiCreate.Handle("/covers", api.Middleware(http.HandlerFunc(c.CreateCoverHandler))).Methods("POST")
	apiCreate.Handle("/cover/{cover_id}", api.Middleware(http.HandlerFunc(c.CoverByIDHandler))).Methods("GET", "OPTIONS")

	apiCreate.Handle("/covers/report", api.Middleware(http.HandlerFunc(report.ReportCoverHandler))).Methods("POST", "OPTIONS")

	apiCreate.Handle("/upload", api.Middleware(http.HandlerFunc(cloudinaryHandler.UploadImageHandler))).Methods("POST", "OPTIONS")
	apiCreate.Handle("/generate-signature", api.Middleware(http.HandlerFunc(cloudinaryHandler.GenerateSignature))).Methods("POST", "OPTIONS")

	apiCreate.Handle("/stats", api.Middleware(http.HandlerFunc(stats.StatsHandler))).Methods("GET", "OPTIONS")

	// live gallery feed for open storefront embeds
	r.HandleFunc("/live", a.Hub.ServeWS)

	// swagger docs hosted at "/docs/"
	r.PathPrefix("/docs/").Handler(http.StripPrefix("/docs/", http.FileServer(http.Dir("./docs/"))))
	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("plant-cover-api has connected to the database")

	// start the moderation digest scheduler
	a.scheduler = scheduler.NewScheduler(
		databases.NewCoverDatabase(a.dbHelper),
		databases.NewReportDatabase(a.dbHelper),
		a.Config.ModerationEmail,
	)
	a.scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
