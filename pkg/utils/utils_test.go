package utils

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateBookingCode(t *testing.T) {
	pattern := regexp.MustCompile(`^HS-20250310-[A-HJ-NP-Z2-9]{6}$`)
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code := GenerateBookingCode(now)
		if !pattern.MatchString(code) {
			t.Fatalf("code %q has unexpected format", code)
		}
		seen[code] = true
	}
	if len(seen) < 190 {
		t.Fatalf("expected codes to be mostly unique, got %d distinct of 200", len(seen))
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-10")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Location() != time.UTC || d.Hour() != 0 || FormatDate(d) != "2025-01-10" {
		t.Fatalf("expected UTC midnight, got %s", d)
	}

	for _, bad := range []string{"", "2025-13-01", "10/01/2025", "2025-01-10T00:00:00Z"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestPagination(t *testing.T) {
	page, perPage := NormalizePage(0, 500)
	if page != 1 || perPage != MaxPerPage {
		t.Fatalf("expected 1/%d, got %d/%d", MaxPerPage, page, perPage)
	}
	if got := CalculateTotalPages(21, 10); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
	if got := CalculateTotalPages(0, 10); got != 0 {
		t.Fatalf("expected 0 pages, got %d", got)
	}
	if got := CalculateOffset(3, 10); got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
	if got := ParseInt("abc", 7); got != 7 {
		t.Fatalf("expected default 7, got %d", got)
	}
}

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Rating int    `validate:"required,min=1,max=5"`
	Status string `validate:"omitempty,oneof=approved suspended"`
}

func TestValidateStruct(t *testing.T) {
	if errs := ValidateStruct(&sampleRequest{Email: "a@b.co", Rating: 5}); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	errs := ValidateStruct(&sampleRequest{Email: "nope", Rating: 9, Status: "deleted"})
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %v", errs)
	}
	if errs["Status"] != "Must be one of: approved, suspended" {
		t.Fatalf("unexpected oneof message %q", errs["Status"])
	}

	formatted := FormatValidationErrors(errs)
	if !strings.HasPrefix(formatted, "Email:") {
		t.Fatalf("expected fields sorted, got %q", formatted)
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPasswordHash("correct-horse", hash) {
		t.Fatal("expected password to match")
	}
	if CheckPasswordHash("battery-staple", hash) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestPrincipalContext(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Fatalf("expected anonymous context")
	}
	if _, ok := GetRoleFromContext(SetUserContext(context.Background(), uuid.Nil, "admin")); ok {
		t.Fatalf("nil user ID must not authenticate")
	}

	id := uuid.New()
	ctx := SetUserContext(context.Background(), id, "hotelier")
	gotID, ok := GetUserIDFromContext(ctx)
	if !ok || gotID != id {
		t.Fatalf("expected %s, got %s (ok=%v)", id, gotID, ok)
	}
	if role, _ := GetRoleFromContext(ctx); role != "hotelier" {
		t.Fatalf("expected hotelier, got %q", role)
	}
}
