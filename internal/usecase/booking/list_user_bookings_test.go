package booking

import (
	"context"
	"testing"
	"time"

	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
)

func TestListUserBookings_InvalidFilter(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListUserBookings(repo)

	_, _, _, _, err := uc.Execute(context.Background(), 1, "archived", 1, 10)
	if !httperr.IsBusiness(err, "invalid_status_filter") {
		t.Fatalf("expected invalid_status_filter, got %v", err)
	}
}

func TestListUserBookings_Pagination(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListUserBookings(repo)

	// A day apart each, so the seeds never collide on a slot.
	for i := 0; i < 5; i++ {
		seedBooking(t, repo, 3*time.Hour+time.Duration(i)*24*time.Hour)
	}

	items, total, page, pageSize, err := uc.Execute(context.Background(), 1, "", 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items on page 1, got %d", len(items))
	}
	if page != 1 || pageSize != 2 {
		t.Fatalf("unexpected paging echo: page %d size %d", page, pageSize)
	}

	items, _, _, _, err = uc.Execute(context.Background(), 1, "", 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item on the last page, got %d", len(items))
	}
}

func TestListUserBookings_Defaults(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListUserBookings(repo)

	_, _, page, pageSize, err := uc.Execute(context.Background(), 1, "", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 1 || pageSize != defaultPageSize {
		t.Fatalf("expected defaults 1/%d, got %d/%d", defaultPageSize, page, pageSize)
	}

	_, _, _, pageSize, err = uc.Execute(context.Background(), 1, "", 1, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pageSize != maxPageSize {
		t.Fatalf("expected clamp to %d, got %d", maxPageSize, pageSize)
	}
}
