package validation

import (
	"encoding/json"
	"testing"
)

func TestLoginRequest_Valid(t *testing.T) {
	v := New()

	req := LoginRequest{Username: "admin", Password: "admin123"}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestLoginRequest_BlankFields(t *testing.T) {
	v := New()

	for _, req := range []LoginRequest{
		{Username: "", Password: "x"},
		{Username: "admin", Password: "   "},
		{Username: "\t", Password: "\n"},
	} {
		if err := v.Struct(req); err == nil {
			t.Fatalf("expected validation error for %+v, got nil", req)
		}
	}
}

func TestAddItemRequest(t *testing.T) {
	v := New()

	if err := v.Struct(AddItemRequest{ItemID: 3}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if err := v.Struct(AddItemRequest{ItemID: 0}); err == nil {
		t.Fatal("expected error for missing item id")
	}
	if err := v.Struct(AddItemRequest{ItemID: -2}); err == nil {
		t.Fatal("expected error for negative item id")
	}
}

func TestSetQuantityRequest(t *testing.T) {
	v := New()

	zero := 0
	if err := v.Struct(SetQuantityRequest{Quantity: &zero}); err != nil {
		t.Fatalf("zero quantity should be accepted (removes line), got %v", err)
	}
	if err := v.Struct(SetQuantityRequest{}); err == nil {
		t.Fatal("expected error for missing quantity")
	}
}

func TestDiscountText_Unmarshal(t *testing.T) {
	tests := []struct {
		body string
		want DiscountText
	}{
		{`{"percent":"12.5"}`, "12.5"},
		{`{"percent":10}`, "10"},
		{`{"percent":""}`, ""},
		{`{}`, ""},
	}
	for _, tt := range tests {
		var req DiscountRequest
		if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.body, err)
		}
		if req.Percent != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.body, req.Percent, tt.want)
		}
	}

	var req DiscountRequest
	if err := json.Unmarshal([]byte(`{"percent":true}`), &req); err == nil {
		t.Fatal("expected error for boolean percent")
	}
}

func TestFieldErrors_UsesJSONNames(t *testing.T) {
	v := New()

	err := v.Struct(AddItemRequest{ItemID: -1})
	fields := FieldErrors(err)
	if fields["item_id"] != "gt=0" {
		t.Fatalf("unexpected field errors: %v", fields)
	}

	err = v.Struct(LoginRequest{})
	fields = FieldErrors(err)
	if fields["username"] != "nonblank" || fields["password"] != "nonblank" {
		t.Fatalf("unexpected field errors: %v", fields)
	}
}
