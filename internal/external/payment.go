package external

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"
)

// PaymentClient talks to the university's payment gateway. Every request
// carries a signature: SHA-256 over the alphabetically sorted request
// parameters concatenated with the merchant secret.
type PaymentClient struct {
	baseURL    string
	merchantID string
	secretKey  string
	returnURL  string
	httpClient *http.Client
}

type PaymentConfig struct {
	BaseURL    string
	MerchantID string
	SecretKey  string
	ReturnURL  string
	Timeout    time.Duration
}

type PaymentInitRequest struct {
	MerchantID  string `json:"merchantId"`
	Signature   string `json:"signature"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
	Email       string `json:"email,omitempty"`
	ReturnURL   string `json:"returnURL,omitempty"`
}

type PaymentInitResponse struct {
	Success    bool   `json:"success"`
	PaymentID  string `json:"paymentId"`
	OrderID    string `json:"orderId"`
	Status     string `json:"status"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	PaymentURL string `json:"paymentURL"`
	ExpiresAt  string `json:"expiresAt"`
}

type PaymentCheckResponse struct {
	Success   bool   `json:"success"`
	PaymentID string `json:"paymentId"`
	OrderID   string `json:"orderId"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
}

func NewPaymentClient(cfg PaymentConfig) *PaymentClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &PaymentClient{
		baseURL:    cfg.BaseURL,
		merchantID: cfg.MerchantID,
		secretKey:  cfg.SecretKey,
		returnURL:  cfg.ReturnURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// sign produces the request signature. Parameter order must be stable, so
// keys are sorted before concatenation.
func (pc *PaymentClient) sign(params map[string]string) string {
	params["MerchantId"] = pc.merchantID
	params["SecretKey"] = pc.secretKey

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var payload string
	for _, key := range keys {
		payload += params[key]
	}

	hash := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(hash[:])
}

func (pc *PaymentClient) InitPayment(amount int64, orderID, description, email string) (*PaymentInitResponse, error) {
	signature := pc.sign(map[string]string{
		"Amount":   strconv.FormatInt(amount, 10),
		"Currency": "VND",
		"OrderId":  orderID,
	})

	req := PaymentInitRequest{
		MerchantID:  pc.merchantID,
		Signature:   signature,
		Amount:      amount,
		OrderID:     orderID,
		Currency:    "VND",
		Description: description,
		Email:       email,
		ReturnURL:   pc.returnURL,
	}

	var result PaymentInitResponse
	if err := pc.post("/api/v1/payments/init", req, &result); err != nil {
		return nil, err
	}

	if !result.Success {
		return nil, fmt.Errorf("payment init rejected by gateway, status %q", result.Status)
	}

	return &result, nil
}

func (pc *PaymentClient) CheckPayment(paymentID string) (*PaymentCheckResponse, error) {
	signature := pc.sign(map[string]string{"PaymentId": paymentID})

	req := map[string]any{
		"merchantId": pc.merchantID,
		"signature":  signature,
		"paymentId":  paymentID,
	}

	var result PaymentCheckResponse
	if err := pc.post("/api/v1/payments/check", req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (pc *PaymentClient) RefundPayment(paymentID string, amount int64, reason string) error {
	signature := pc.sign(map[string]string{
		"Amount":    strconv.FormatInt(amount, 10),
		"PaymentId": paymentID,
	})

	req := map[string]any{
		"merchantId": pc.merchantID,
		"signature":  signature,
		"paymentId":  paymentID,
		"amount":     amount,
		"reason":     reason,
	}

	return pc.post("/api/v1/payments/refund", req, nil)
}

func (pc *PaymentClient) CancelPayment(paymentID, reason string) error {
	signature := pc.sign(map[string]string{"PaymentId": paymentID})

	req := map[string]any{
		"merchantId": pc.merchantID,
		"signature":  signature,
		"paymentId":  paymentID,
		"reason":     reason,
	}

	return pc.post("/api/v1/payments/cancel", req, nil)
}

func (pc *PaymentClient) post(path string, body any, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := pc.httpClient.Post(pc.baseURL+path, "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected gateway status code: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}

	return nil
}
