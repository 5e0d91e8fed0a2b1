package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"tvusm/internal/models"
)

// TestClient drives the API over HTTP. These tests need a running stack
// (API plus Postgres); set TVUSM_API_URL to enable them.
type TestClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewTestClient(t *testing.T) *TestClient {
	baseURL := os.Getenv("TVUSM_API_URL")
	if baseURL == "" {
		t.Skip("TVUSM_API_URL not set, skipping integration test")
	}

	return &TestClient{
		BaseURL: baseURL,
		Token:   os.Getenv("TVUSM_API_TOKEN"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *TestClient) makeRequest(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}

	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return out
}

func (c *TestClient) CreateVenue(t *testing.T, name string) models.Venue {
	resp := c.makeRequest(t, "POST", "/api/venues", models.CreateVenueRequest{Name: name})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201 creating venue, got %d", resp.StatusCode)
	}
	return decodeBody[models.Venue](t, resp)
}

func (c *TestClient) CreateCourt(t *testing.T, venueID int64, name, code string, rate int64) models.Court {
	resp := c.makeRequest(t, "POST", "/api/courts", models.CreateCourtRequest{
		VenueID:    venueID,
		Name:       name,
		Code:       code,
		Type:       "badminton",
		HourlyRate: rate,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201 creating court, got %d", resp.StatusCode)
	}
	return decodeBody[models.Court](t, resp)
}

func (c *TestClient) CreateMapping(t *testing.T, parentID, childID int64) models.CourtMapping {
	resp := c.makeRequest(t, "POST", "/api/court-mappings", models.CreateCourtMappingRequest{
		ParentCourtID: parentID,
		ChildCourtID:  childID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201 creating mapping, got %d", resp.StatusCode)
	}
	return decodeBody[models.CourtMapping](t, resp)
}

func (c *TestClient) CreateBooking(t *testing.T, req models.CreateBookingRequest) (*models.Booking, int) {
	resp := c.makeRequest(t, "POST", "/api/bookings", req)
	if resp.StatusCode != http.StatusCreated {
		resp.Body.Close()
		return nil, resp.StatusCode
	}
	booking := decodeBody[models.Booking](t, resp)
	return &booking, http.StatusCreated
}

func (c *TestClient) CheckAvailability(t *testing.T, courtID int64, date, start, end string) models.AvailabilityResponse {
	path := fmt.Sprintf("/api/bookings/availability?court_id=%d&date=%s&start_time=%s&end_time=%s",
		courtID, date, start, end)
	resp := c.makeRequest(t, "GET", path, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 checking availability, got %d", resp.StatusCode)
	}
	return decodeBody[models.AvailabilityResponse](t, resp)
}

func (c *TestClient) CancelBooking(t *testing.T, bookingID int64) {
	resp := c.makeRequest(t, "DELETE", fmt.Sprintf("/api/bookings/%d", bookingID), nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 cancelling booking, got %d", resp.StatusCode)
	}
}

func (c *TestClient) GetBooking(t *testing.T, bookingID int64) models.Booking {
	resp := c.makeRequest(t, "GET", fmt.Sprintf("/api/bookings/%d", bookingID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 getting booking, got %d", resp.StatusCode)
	}
	return decodeBody[models.Booking](t, resp)
}
