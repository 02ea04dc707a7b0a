package services

import (
	"strings"
	"testing"

	"shopBack/internal/models"
)

func TestResolveOrderRefClassification(t *testing.T) {
	tests := []struct {
		raw  string
		kind models.OrderRefKind
	}{
		{"ORD-1001", models.OrderRefNumber},
		{"ORD-", models.OrderRefNumber},
		{"ORD-abc", models.OrderRefNumber},
		{"1001", models.OrderRefID},
		{"0", models.OrderRefID},
		{"ord-1001", models.OrderRefID}, // prefix is case-sensitive
		{"garbage", models.OrderRefID},
		{"", models.OrderRefID},
	}

	for _, tt := range tests {
		ref := ResolveOrderRef(tt.raw)
		if ref.Kind != tt.kind {
			t.Errorf("ResolveOrderRef(%q) kind = %v, want %v", tt.raw, ref.Kind, tt.kind)
		}
		if ref.Raw != tt.raw {
			t.Errorf("ResolveOrderRef(%q) must keep the raw token, got %q", tt.raw, ref.Raw)
		}
	}
}

func TestCanAccessOrderCrossProduct(t *testing.T) {
	order := models.Order{ID: 7, UserID: 42}

	tests := []struct {
		name      string
		principal models.Principal
		want      bool
	}{
		{"owner", models.Principal{UserID: 42}, true},
		{"owner_admin", models.Principal{UserID: 42, IsAdmin: true}, true},
		{"stranger", models.Principal{UserID: 43}, false},
		{"stranger_admin", models.Principal{UserID: 43, IsAdmin: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canAccessOrder(tt.principal, order); got != tt.want {
				t.Errorf("canAccessOrder(%+v) = %v, want %v", tt.principal, got, tt.want)
			}
		})
	}
}

func TestDecodeOrderUpdateStatusOnly(t *testing.T) {
	upd, err := DecodeOrderUpdate(strings.NewReader(`{"status":"shipped"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upd.Kind != UpdateOrderStatus || upd.Value != "shipped" {
		t.Fatalf("got %+v, want status update shipped", upd)
	}
}

func TestDecodeOrderUpdateStatusWinsOverPayment(t *testing.T) {
	upd, err := DecodeOrderUpdate(strings.NewReader(`{"status":"shipped","paymentStatus":"paid"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upd.Kind != UpdateOrderStatus {
		t.Fatalf("status field must win when both are present, got kind %v", upd.Kind)
	}
	if upd.Value != "shipped" {
		t.Fatalf("got value %q, want shipped", upd.Value)
	}
}

func TestDecodeOrderUpdatePaymentOnly(t *testing.T) {
	upd, err := DecodeOrderUpdate(strings.NewReader(`{"paymentStatus":"paid"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upd.Kind != UpdateOrderPayment || upd.Value != "paid" {
		t.Fatalf("got %+v, want payment update paid", upd)
	}
}

func TestDecodeOrderUpdateRejects(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"note":"hi"}`,
		`{"status":"launched"}`,
		`{"paymentStatus":"maybe"}`,
		`not json`,
	}
	for _, body := range bodies {
		if _, err := DecodeOrderUpdate(strings.NewReader(body)); err == nil {
			t.Errorf("DecodeOrderUpdate(%q) must fail", body)
		}
	}
}
