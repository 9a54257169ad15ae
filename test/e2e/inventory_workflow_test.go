//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/jsalcedo/boxtrack-be/internal/adapters/db"
	redis_a "github.com/jsalcedo/boxtrack-be/internal/adapters/redis_adapter"
	"github.com/jsalcedo/boxtrack-be/internal/core/services"
	"github.com/jsalcedo/boxtrack-be/internal/handlers"
	"github.com/jsalcedo/boxtrack-be/test/helpers"
)

type WarehouseE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *WarehouseE2ESuite) SetupSuite() {
	// Setup test database
	s.testDB = helpers.SetupTestDB(s.T())

	// Setup test Redis
	s.testRedis = helpers.SetupTestRedis(s.T())

	// Start test server
	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *WarehouseE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *WarehouseE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.testRedis.Server.FlushAll()
}

func (s *WarehouseE2ESuite) TestCompleteBoxLifecycle() {
	// 1. Register a product
	resp := s.makeRequest("POST", "/products", map[string]interface{}{
		"brand": "Acme",
		"name":  "Widget",
		"size":  "M",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var product map[string]interface{}
	s.decodeResponse(resp, &product)
	productID := product["id"].(string)
	s.NotEmpty(productID)

	// 2. Create a storage location
	resp = s.makeRequest("POST", "/locations", map[string]interface{}{
		"zone":  "A",
		"aisle": "01",
		"rack":  "02",
		"shelf": "B",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var location map[string]interface{}
	s.decodeResponse(resp, &location)
	locationCode := location["location_code"].(string)
	s.Equal("A01-02-B", locationCode)

	// 3. Register a box for the product
	resp = s.makeRequest("POST", "/boxes", map[string]interface{}{
		"product_id": productID,
		"lot_code":   "LOT-2026-009",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var box map[string]interface{}
	s.decodeResponse(resp, &box)
	boxID := box["box_id"].(string)
	s.NotEmpty(boxID)
	s.Equal("BOX:"+boxID, box["qr_value"])

	// 4. Receive the box (IN). It lands at RECEIVING.
	inClientID := uuid.NewString()
	resp = s.makeRequest("POST", "/events", map[string]interface{}{
		"client_event_id": inClientID,
		"event_type":      "IN",
		"box_id":          "BOX:" + boxID,
		"mode":            "INBOUND",
		"source_type":     "INBOUND_STATION",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var inResult map[string]interface{}
	s.decodeResponse(resp, &inResult)
	s.Equal(true, inResult["success"])
	s.Equal(true, inResult["changed"])

	// 5. Resubmitting the same client_event_id is inert
	resp = s.makeRequest("POST", "/events", map[string]interface{}{
		"client_event_id": inClientID,
		"event_type":      "IN",
		"box_id":          "BOX:" + boxID,
		"mode":            "INBOUND",
		"source_type":     "INBOUND_STATION",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var duplicate map[string]interface{}
	s.decodeResponse(resp, &duplicate)
	s.Equal(true, duplicate["is_duplicate"])

	// 6. Put the box away (MOVE) to the storage location
	resp = s.makeRequest("POST", "/events", map[string]interface{}{
		"client_event_id": uuid.NewString(),
		"event_type":      "MOVE",
		"box_id":          "BOX:" + boxID,
		"location_code":   "LOC:" + locationCode,
		"mode":            "MOVE",
		"source_type":     "PHONE",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	// 7. The projection shows the box in stock at the new location
	resp = s.makeRequest("GET", "/inventory", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var inventory map[string]interface{}
	s.decodeResponse(resp, &inventory)
	items := inventory["items"].([]interface{})
	s.Len(items, 1)
	row := items[0].(map[string]interface{})
	s.Equal(boxID, row["box_id"])
	s.Equal("IN_STOCK", row["status"])
	s.Equal(locationCode, row["location_code"])

	// 8. Ship the box (OUT)
	resp = s.makeRequest("POST", "/events", map[string]interface{}{
		"client_event_id": uuid.NewString(),
		"event_type":      "OUT",
		"box_id":          "BOX:" + boxID,
		"mode":            "OUTBOUND",
		"source_type":     "OUTBOUND_STATION",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var outResult map[string]interface{}
	s.decodeResponse(resp, &outResult)
	outEventID := outResult["event_id"].(string)

	// 9. Today's counters reflect the full day
	resp = s.makeRequest("GET", "/stats/today", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var stats map[string]interface{}
	s.decodeResponse(resp, &stats)
	s.Equal(float64(1), stats["received"])
	s.Equal(float64(1), stats["moved"])
	s.Equal(float64(1), stats["shipped"])

	// 10. Undo the shipment; the refold restores the box to its shelf
	resp = s.makeRequest("POST", fmt.Sprintf("/events/%s/undo", outEventID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var undo map[string]interface{}
	s.decodeResponse(resp, &undo)
	s.Equal(true, undo["success"])
	s.Equal("IN_STOCK", undo["status"])
	s.Equal(locationCode, undo["current_location"])

	// 11. Undoing the same event again conflicts
	resp = s.makeRequest("POST", fmt.Sprintf("/events/%s/undo", outEventID), nil)
	s.Equal(http.StatusConflict, resp.StatusCode)

	// 12. The full history is visible on the box, reversed event included
	resp = s.makeRequest("GET", fmt.Sprintf("/boxes/%s", boxID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var history map[string]interface{}
	s.decodeResponse(resp, &history)
	events := history["events"].([]interface{})
	s.Len(events, 3)
}

func (s *WarehouseE2ESuite) TestOutWithoutInIsFlagged() {
	productID := s.createProduct("Globex", "Gear Assembly")
	boxID := s.createBox(productID)

	// Ship a box that was never received. Accepted, but tagged.
	resp := s.makeRequest("POST", "/events", map[string]interface{}{
		"client_event_id": uuid.NewString(),
		"event_type":      "OUT",
		"box_id":          "BOX:" + boxID,
		"mode":            "OUTBOUND",
		"source_type":     "OUTBOUND_STATION",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var result map[string]interface{}
	s.decodeResponse(resp, &result)
	s.Equal(true, result["success"])
	s.Equal("OUT_WITHOUT_IN", result["exception_type"])
	s.NotEmpty(result["warning"])

	// The exceptions feed picks it up
	resp = s.makeRequest("GET", "/exceptions", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var exceptions map[string]interface{}
	s.decodeResponse(resp, &exceptions)
	s.Equal(float64(1), exceptions["count"])
}

func (s *WarehouseE2ESuite) TestMoveOutOfWarehouseIsRejected() {
	productID := s.createProduct("Initech", "Fastener Kit")
	boxID := s.createBox(productID)

	resp := s.makeRequest("POST", "/locations", map[string]interface{}{
		"zone": "B", "aisle": "01", "rack": "01", "shelf": "A",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)
	var location map[string]interface{}
	s.decodeResponse(resp, &location)

	// Box was never received; moving it is a hard rejection
	resp = s.makeRequest("POST", "/events", map[string]interface{}{
		"client_event_id": uuid.NewString(),
		"event_type":      "MOVE",
		"box_id":          "BOX:" + boxID,
		"location_code":   "LOC:" + location["location_code"].(string),
		"mode":            "MOVE",
		"source_type":     "PHONE",
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	// Nothing was appended for the box
	resp = s.makeRequest("GET", fmt.Sprintf("/events?box_id=%s", boxID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var list map[string]interface{}
	s.decodeResponse(resp, &list)
	s.Equal(float64(0), list["count"])
}

func (s *WarehouseE2ESuite) TestConcurrentEventSubmissions() {
	productID := s.createProduct("Umbrella", "Sealant Cartridge")

	done := make(chan string, 10)
	for i := 0; i < 10; i++ {
		go func() {
			boxID := s.createBox(productID)
			resp := s.makeRequest("POST", "/events", map[string]interface{}{
				"client_event_id": uuid.NewString(),
				"event_type":      "IN",
				"box_id":          "BOX:" + boxID,
				"mode":            "INBOUND",
				"source_type":     "INBOUND_STATION",
			})
			s.Equal(http.StatusCreated, resp.StatusCode)
			resp.Body.Close()
			done <- boxID
		}()
	}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		boxID := <-done
		s.False(seen[boxID], "duplicate box id %s", boxID)
		seen[boxID] = true
	}

	resp := s.makeRequest("GET", "/inventory?status=IN_STOCK", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var inventory map[string]interface{}
	s.decodeResponse(resp, &inventory)
	s.Equal(float64(10), inventory["total_count"])
}

// Helper methods

func (s *WarehouseE2ESuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()
	database := s.testDB.Database
	cache := redis_a.NewCache(s.testRedis.Client, time.Hour, logger)

	eventRepo := db.NewEventRepository(database, logger)
	stateRepo := db.NewStateRepository(database, logger)
	boxRepo := db.NewBoxRepository(database, logger)
	productRepo := db.NewProductRepository(database, logger)
	locationRepo := db.NewLocationRepository(database, logger)
	counterRepo := db.NewCounterRepository(database, logger)

	rules := services.NewRulesEngine(eventRepo, stateRepo, logger)
	sequence := services.NewSequenceService(counterRepo, logger)
	projector := services.NewProjector(eventRepo, logger)
	locationService := services.NewLocationService(locationRepo, stateRepo, cache, logger)
	eventService := services.NewEventService(
		database, eventRepo, stateRepo, boxRepo, locationRepo,
		rules, locationService, projector, cache, logger,
	)
	boxService := services.NewBoxService(boxRepo, productRepo, eventRepo, stateRepo, locationRepo, sequence, logger)
	productService := services.NewProductService(productRepo, logger)
	statsService := services.NewStatsService(eventRepo, stateRepo, locationService, cache, logger)

	eventHandler := handlers.NewEventHandler(eventService, logger)
	boxHandler := handlers.NewBoxHandler(boxService, logger)
	inventoryHandler := handlers.NewInventoryHandler(stateRepo, logger)
	productHandler := handlers.NewProductHandler(productService, logger)
	locationHandler := handlers.NewLocationHandler(locationService, logger)
	statsHandler := handlers.NewStatsHandler(statsService, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/events", eventHandler.CreateEvent)
	mux.HandleFunc("POST /api/v1/events/{id}/undo", eventHandler.UndoEvent)
	mux.HandleFunc("GET /api/v1/events", eventHandler.ListEvents)
	mux.HandleFunc("GET /api/v1/exceptions", eventHandler.ListExceptions)
	mux.HandleFunc("POST /api/v1/boxes", boxHandler.CreateBox)
	mux.HandleFunc("GET /api/v1/boxes/{id}", boxHandler.GetBox)
	mux.HandleFunc("GET /api/v1/inventory", inventoryHandler.ListInventory)
	mux.HandleFunc("POST /api/v1/products", productHandler.CreateProduct)
	mux.HandleFunc("GET /api/v1/products", productHandler.ListProducts)
	mux.HandleFunc("POST /api/v1/locations", locationHandler.CreateLocation)
	mux.HandleFunc("GET /api/v1/locations", locationHandler.ListLocations)
	mux.HandleFunc("GET /api/v1/stats/today", statsHandler.Today)

	return httptest.NewServer(mux)
}

func (s *WarehouseE2ESuite) createProduct(brand, name string) string {
	resp := s.makeRequest("POST", "/products", map[string]interface{}{
		"brand": brand,
		"name":  name,
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var product map[string]interface{}
	s.decodeResponse(resp, &product)
	return product["id"].(string)
}

func (s *WarehouseE2ESuite) createBox(productID string) string {
	resp := s.makeRequest("POST", "/boxes", map[string]interface{}{
		"product_id": productID,
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var box map[string]interface{}
	s.decodeResponse(resp, &box)
	return box["box_id"].(string)
}

func (s *WarehouseE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.NoError(err)

	return resp
}

func (s *WarehouseE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestWarehouseE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(WarehouseE2ESuite))
}
