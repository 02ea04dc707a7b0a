package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"

	"shopBack/internal/models"
	"shopBack/internal/services"
)

var testSecret = []byte("test-secret")

type stubOrderStore struct {
	byID     map[int]models.Order
	byNumber map[string]models.Order

	statusCalls  int
	paymentCalls int
	deleteCalls  int
}

func newStubOrderStore(orders ...models.Order) *stubOrderStore {
	s := &stubOrderStore{byID: map[int]models.Order{}, byNumber: map[string]models.Order{}}
	for _, o := range orders {
		s.byID[o.ID] = o
		s.byNumber[o.OrderNumber] = o
	}
	return s
}

func (s *stubOrderStore) GetOrderByID(_ context.Context, id int) (models.Order, error) {
	o, ok := s.byID[id]
	if !ok {
		return models.Order{}, models.ErrOrderNotFound
	}
	return o, nil
}

func (s *stubOrderStore) GetOrderByNumber(_ context.Context, number string) (models.Order, error) {
	o, ok := s.byNumber[number]
	if !ok {
		return models.Order{}, models.ErrOrderNotFound
	}
	return o, nil
}

func (s *stubOrderStore) UpdateOrderStatus(_ context.Context, id int, status string) (models.Order, error) {
	s.statusCalls++
	o, ok := s.byID[id]
	if !ok {
		return models.Order{}, models.ErrOrderNotFound
	}
	o.Status = status
	s.byID[id] = o
	return o, nil
}

func (s *stubOrderStore) UpdateOrderPaymentStatus(_ context.Context, id int, status string) (models.Order, error) {
	s.paymentCalls++
	o, ok := s.byID[id]
	if !ok {
		return models.Order{}, models.ErrOrderNotFound
	}
	o.PaymentStatus = status
	s.byID[id] = o
	return o, nil
}

func (s *stubOrderStore) DeleteOrder(_ context.Context, id int) error {
	if _, ok := s.byID[id]; !ok {
		return models.ErrOrderNotFound
	}
	s.deleteCalls++
	delete(s.byID, id)
	return nil
}

func (s *stubOrderStore) GetOrdersByUserID(_ context.Context, userID int) ([]models.Order, error) {
	var out []models.Order
	for _, o := range s.byID {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubOrderStore) GetOrders(_ context.Context, status string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range s.byID {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func newOrderHandler(store services.OrderStore) *OrderHandler {
	return &OrderHandler{
		Service: &services.OrderService{Orders: store},
		Auth:    &Authenticator{Secret: testSecret},
	}
}

func signToken(t *testing.T, userID int, role string) string {
	t.Helper()
	claims := &models.Claims{
		UserID: uint(userID),
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

// orderRequest builds a request the way pat delivers it, with the path
// parameter stored as :id in the query.
func orderRequest(method, id, body string) *http.Request {
	target := "/orders/" + id
	if id != "" {
		target += "?" + url.Values{":id": {id}}.Encode()
	}
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	return r
}

func authed(r *http.Request, token string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("response is not a JSON object: %v\n%s", err, rec.Body.String())
	}
	return m
}

func TestGetOrderByNumberAsOwner(t *testing.T) {
	store := newStubOrderStore(models.Order{ID: 1001, OrderNumber: "ORD-1001", UserID: 7, Status: "pending"})
	h := newOrderHandler(store)

	rec := httptest.NewRecorder()
	h.OrderAccess(rec, authed(orderRequest(http.MethodGet, "ORD-1001", ""), signToken(t, 7, "user")))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["order_number"] != "ORD-1001" {
		t.Fatalf("got body %v", body)
	}
}

func TestGetOrderForbiddenLeaksNothing(t *testing.T) {
	store := newStubOrderStore(models.Order{
		ID: 1001, OrderNumber: "ORD-1001", UserID: 7,
		Status: "pending", ShippingAddress: "12 Hidden Lane",
	})
	h := newOrderHandler(store)

	rec := httptest.NewRecorder()
	h.OrderAccess(rec, authed(orderRequest(http.MethodGet, "1001", ""), signToken(t, 8, "user")))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	body := decodeBody(t, rec)
	if _, ok := body["error"]; !ok {
		t.Fatalf("403 body must carry an error field: %v", body)
	}
	for _, field := range []string{"order_number", "user_id", "status", "shipping_address", "total"} {
		if _, ok := body[field]; ok {
			t.Errorf("order field %q leaked into the 403 body", field)
		}
	}
	if strings.Contains(rec.Body.String(), "Hidden Lane") {
		t.Errorf("order data leaked: %s", rec.Body.String())
	}
}

func TestGetOrderAsAdmin(t *testing.T) {
	store := newStubOrderStore(models.Order{ID: 1001, OrderNumber: "ORD-1001", UserID: 7})
	h := newOrderHandler(store)

	rec := httptest.NewRecorder()
	h.OrderAccess(rec, authed(orderRequest(http.MethodGet, "1001", ""), signToken(t, 99, "admin")))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	h := newOrderHandler(newStubOrderStore())

	rec := httptest.NewRecorder()
	h.OrderAccess(rec, authed(orderRequest(http.MethodGet, "404", ""), signToken(t, 7, "user")))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteWithoutAuth(t *testing.T) {
	store := newStubOrderStore(models.Order{ID: 55, OrderNumber: "ORD-55", UserID: 7})
	h := newOrderHandler(store)

	rec := httptest.NewRecorder()
	h.OrderAccess(rec, orderRequest(http.MethodDelete, "55", ""))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if store.deleteCalls != 0 {
		t.Fatalf("unauthenticated delete must not reach the store")
	}
}

func TestDeleteAsOwner(t *testing.T) {
	store := newStubOrderStore(models.Order{ID: 55, OrderNumber: "ORD-55", UserID: 7})
	h := newOrderHandler(store)

	rec := httptest.NewRecorder()
	h.OrderAccess(rec, authed(orderRequest(http.MethodDelete, "55", ""), signToken(t, 7, "user")))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", rec.Code, rec.Body.String())
	}
	if store.deleteCalls != 1 {
		t.Fatalf("deleteCalls = %d, want 1", store.deleteCalls)
	}
}

func TestDeleteAsStrangerForbidden(t *testing.T) {
	store := newStubOrderStore(models.Order{ID: 55, OrderNumber: "ORD-55", UserID: 7})
	h := newOrderHandler(store)

	rec := httptest.NewRecorder()
	h.OrderAccess(rec, authed(orderRequest(http.MethodDelete, "55", ""), signToken(t, 8, "user")))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if store.deleteCalls != 0 {
		t.Fatalf("denied delete must not reach the store")
	}
}

func TestPutEmptyBodyRejectedWithoutMutation(t *testing.T) {
	store := newStubOrderStore(models.Order{ID: 9, OrderNumber: "ORD-9", UserID: 7})
	h := newOrderHandler(store)

	rec := httptest.NewRecorder()
	h.OrderAccess(rec, authed(orderRequest(http.MethodPut, "9", `{}`), signToken(t, 7, "user")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if store.statusCalls != 0 || store.paymentCalls != 0 {
		t.Fatalf("an invalid update must trigger no store mutation")
	}
}

func TestPutStatusWinsOverPayment(t *testing.T) {
	store := newStubOrderStore(models.Order{ID: 9, OrderNumber: "ORD-9", UserID: 7, PaymentStatus: "pending"})
	h := newOrderHandler(store)

	rec := httptest.NewRecorder()
	h.OrderAccess(rec, authed(
		orderRequest(http.MethodPut, "9", `{"status":"shipped","paymentStatus":"paid"}`),
		signToken(t, 7, "user")))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", rec.Code, rec.Body.String())
	}
	if store.statusCalls != 1 {
		t.Fatalf("statusCalls = %d, want 1", store.statusCalls)
	}
	if store.paymentCalls != 0 {
		t.Fatalf("payment mutation must not run when status is present")
	}
	body := decodeBody(t, rec)
	if body["status"] != "shipped" {
		t.Fatalf("got body %v", body)
	}
	if body["payment_status"] != "pending" {
		t.Fatalf("payment status must be untouched, got %v", body["payment_status"])
	}
}

func TestPutPaymentStatusOnly(t *testing.T) {
	store := newStubOrderStore(models.Order{ID: 9, OrderNumber: "ORD-9", UserID: 7, PaymentStatus: "pending"})
	h := newOrderHandler(store)

	rec := httptest.NewRecorder()
	h.OrderAccess(rec, authed(orderRequest(http.MethodPut, "9", `{"paymentStatus":"paid"}`), signToken(t, 7, "user")))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", rec.Code, rec.Body.String())
	}
	if store.paymentCalls != 1 || store.statusCalls != 0 {
		t.Fatalf("want exactly one payment mutation, got status=%d payment=%d", store.statusCalls, store.paymentCalls)
	}
}

func TestOptionsNeedsNoAuth(t *testing.T) {
	h := newOrderHandler(newStubOrderStore())

	rec := httptest.NewRecorder()
	h.OrderAccess(rec, orderRequest(http.MethodOptions, "1001", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("OPTIONS body must be empty, got %q", rec.Body.String())
	}
	for _, header := range []string{
		"Access-Control-Allow-Origin",
		"Access-Control-Allow-Methods",
		"Access-Control-Allow-Headers",
	} {
		if rec.Header().Get(header) == "" {
			t.Errorf("missing CORS header %s", header)
		}
	}
}

func TestUnsupportedMethod(t *testing.T) {
	h := newOrderHandler(newStubOrderStore())

	rec := httptest.NewRecorder()
	h.OrderAccess(rec, orderRequest(http.MethodPost, "1001", `{}`))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestMissingIdentifierBeatsMissingAuth(t *testing.T) {
	h := newOrderHandler(newStubOrderStore())

	// no :id parameter and no Authorization header: identifier presence is
	// checked first
	rec := httptest.NewRecorder()
	h.OrderAccess(rec, httptest.NewRequest(http.MethodGet, "/orders/", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	h := newOrderHandler(newStubOrderStore(models.Order{ID: 1, OrderNumber: "ORD-1", UserID: 7}))

	rec := httptest.NewRecorder()
	h.OrderAccess(rec, authed(orderRequest(http.MethodGet, "1", ""), "not-a-token"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
