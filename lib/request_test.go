package lib

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"atelier_server/structs"
)

type testCreatePayload struct {
	Name       string `json:"name" validate:"required,min=2"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	PriceCents int64  `json:"price_cents" validate:"gte=0"`
}

func TestExtractAndValidateBodyValid(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Screen swap","date":"2026-09-01","price_cents":8450}`))

	body, err := ExtractAndValidateBody[testCreatePayload](r)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if body.Name != "Screen swap" || body.Date != "2026-09-01" || body.PriceCents != 8450 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestExtractAndValidateBodyMissingField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"date":"2026-09-01"}`))

	_, err := ExtractAndValidateBody[testCreatePayload](r)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError got %T", err)
	}
	if len(validationErr.Errors) == 0 {
		t.Fatalf("expected field errors")
	}
	if validationErr.Errors[0].Field != "name" {
		t.Fatalf("unexpected field %q", validationErr.Errors[0].Field)
	}
}

func TestExtractAndValidateBodyBadDate(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Screen swap","date":"01/09/2026"}`))

	_, err := ExtractAndValidateBody[testCreatePayload](r)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError got %T", err)
	}
	if validationErr.Errors[0].Field != "date" {
		t.Fatalf("unexpected field %q", validationErr.Errors[0].Field)
	}
}

func TestExtractAndValidateBodyMalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))

	if _, err := ExtractAndValidateBody[testCreatePayload](r); err == nil {
		t.Fatalf("expected an error for malformed JSON")
	}
}

func TestExtractAndValidateBodyRepairNeedsDescription(t *testing.T) {
	// A repair without a fault description cannot be taken in
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"client_name":"Jean Martin","client_phone":"0612345678"}`))

	_, err := ExtractAndValidateBody[structs.CreateRepairRequest](r)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError got %T", err)
	}

	found := false
	for _, fieldErr := range validationErr.Errors {
		if fieldErr.Field == "description" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a field error for description, got %+v", validationErr.Errors)
	}
}
