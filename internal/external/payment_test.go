package external

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *PaymentClient {
	return NewPaymentClient(PaymentConfig{
		BaseURL:    url,
		MerchantID: "uni-sports",
		SecretKey:  "secret",
		ReturnURL:  "http://localhost:8080/api/payments/success",
	})
}

func TestInitPayment(t *testing.T) {
	var received PaymentInitRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/payments/init", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		json.NewEncoder(w).Encode(PaymentInitResponse{
			Success:    true,
			PaymentID:  "pay-123",
			OrderID:    received.OrderID,
			Status:     "INIT",
			Amount:     received.Amount,
			Currency:   "VND",
			PaymentURL: "https://gateway.example.com/pay/pay-123",
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	resp, err := client.InitPayment(300000, "order-1", "Court booking", "renter@example.com")
	require.NoError(t, err)

	assert.Equal(t, "pay-123", resp.PaymentID)
	assert.Equal(t, "https://gateway.example.com/pay/pay-123", resp.PaymentURL)

	assert.Equal(t, "uni-sports", received.MerchantID)
	assert.Equal(t, int64(300000), received.Amount)
	assert.Equal(t, "order-1", received.OrderID)
	assert.Equal(t, "renter@example.com", received.Email)

	// Signature is SHA-256 over the sorted params with merchant id and
	// secret mixed in: Amount, Currency, MerchantId, OrderId, SecretKey.
	payload := "300000" + "VND" + "uni-sports" + "order-1" + "secret"
	sum := sha256.Sum256([]byte(payload))
	assert.Equal(t, hex.EncodeToString(sum[:]), received.Signature)
}

func TestInitPaymentRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(PaymentInitResponse{Success: false, Status: "REJECTED"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.InitPayment(100, "order-2", "", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "REJECTED")
}

func TestInitPaymentGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.InitPayment(100, "order-3", "", "")
	assert.Error(t, err)
}

func TestCheckPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/payments/check", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "pay-123", req["paymentId"])
		assert.NotEmpty(t, req["signature"])

		json.NewEncoder(w).Encode(PaymentCheckResponse{
			Success:   true,
			PaymentID: "pay-123",
			Status:    "completed",
			Amount:    300000,
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	resp, err := client.CheckPayment("pay-123")
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}

func TestRefundPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/payments/refund", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "pay-123", req["paymentId"])
		assert.Equal(t, float64(300000), req["amount"])
		assert.Equal(t, "booking cancelled", req["reason"])

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	err := client.RefundPayment("pay-123", 300000, "booking cancelled")
	assert.NoError(t, err)
}
