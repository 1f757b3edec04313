package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rousseauplant/plant-cover-api/api/handlers"
	"github.com/rousseauplant/plant-cover-api/models"
)

func TestLiveHub_BroadcastCoverCreated(t *testing.T) {
	hub := handlers.NewLiveHub()

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	cover := models.Cover{ID: primitive.NewObjectID(), PlantName: "calathea"}
	hub.EmitCoverCreated(cover)

	var msg map[string]interface{}
	assert.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "cover_created", msg["event"])

	data, ok := msg["data"].(map[string]interface{})
	if assert.True(t, ok) {
		assert.Equal(t, "calathea", data["plant_name"])
	}
}

func TestLiveHub_BroadcastCoverHidden(t *testing.T) {
	hub := handlers.NewLiveHub()

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	hub.EmitCoverHidden("5fc51f58c72ff10004dca382")

	var msg map[string]interface{}
	assert.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "cover_hidden", msg["event"])

	data, ok := msg["data"].(map[string]interface{})
	if assert.True(t, ok) {
		assert.Equal(t, "5fc51f58c72ff10004dca382", data["coverId"])
	}
}

func TestLiveHub_NilHubEmitIsSafe(t *testing.T) {
	// handlers run without a hub in tests, emits must not panic
	var hub *handlers.LiveHub
	hub.EmitCoverCreated(models.Cover{})
	hub.EmitCoverHidden("abc")
}
