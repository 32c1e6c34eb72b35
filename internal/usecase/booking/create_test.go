package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/MikyMack/Blushley-full-sub000/internal/audit"
	domain "github.com/MikyMack/Blushley-full-sub000/internal/domain/booking"
	"github.com/MikyMack/Blushley-full-sub000/internal/events"
	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
)

// Far enough ahead that the past-start check never interferes.
const testDate = "2030-06-03"

func newCreateUC(repo *fakeRepo) *CreateBooking {
	dispatcher := audit.NewDispatcher(audit.New(nil))
	publisher := events.NewPublisher(nil, "")
	return NewCreateBooking(repo, dispatcher, publisher)
}

func baseInput() CreateBookingInput {
	return CreateBookingInput{
		UserID:     1,
		SalonID:    1,
		ServiceIDs: []uint{1, 2}, // 30 + 60 min
		Date:       testDate,
		Time:       "10:00",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	b, err := uc.Execute(context.Background(), baseInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Status != string(domain.StatusPending) {
		t.Fatalf("expected pending, got %s", b.Status)
	}
	if b.BookingToken == "" {
		t.Fatal("expected a booking token")
	}
	if b.TotalDurationMin != 90 {
		t.Fatalf("expected 90 min, got %d", b.TotalDurationMin)
	}
	if b.TotalServiceAmount != 1700 || b.SalonEarning != 1530 {
		t.Fatalf("unexpected payment snapshot: total %v, earning %v", b.TotalServiceAmount, b.SalonEarning)
	}
	if len(b.Services) != 2 {
		t.Fatalf("expected 2 snapshot services, got %d", len(b.Services))
	}
	if got := b.EndAt.Sub(b.StartAt).Minutes(); got != 90 {
		t.Fatalf("interval should span 90 minutes, got %v", got)
	}
	if b.BookingType != BookingTypeSalon {
		t.Fatalf("expected default booking type salon, got %s", b.BookingType)
	}
}

func TestCreateBooking_ClosedDate(t *testing.T) {
	repo := newFakeRepo()
	repo.closed[testDate] = true
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), baseInput())
	if !httperr.IsBusiness(err, "salon_closed") {
		t.Fatalf("expected salon_closed, got %v", err)
	}
}

func TestCreateBooking_OutsideHours(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	for _, at := range []string{"08:00", "17:30"} { // 17:30 + 90min pushes past close
		in := baseInput()
		in.Time = at

		_, err := uc.Execute(context.Background(), in)
		if !httperr.IsBusiness(err, "slot_outside_hours") {
			t.Fatalf("%s: expected slot_outside_hours, got %v", at, err)
		}
	}
}

func TestCreateBooking_DuringBreak(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	in := baseInput()
	in.Time = "12:30" // 12:30-14:00 crosses the 13:00-14:00 break

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_during_break") {
		t.Fatalf("expected slot_during_break, got %v", err)
	}
}

func TestCreateBooking_TouchingBreakAllowed(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	in := baseInput()
	in.ServiceIDs = []uint{2} // 60 min
	in.Time = "12:00"         // ends exactly at break start

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("booking ending at break start must pass, got %v", err)
	}
}

func TestCreateBooking_PastStart(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	in := baseInput()
	in.Date = "2020-06-01"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_in_past") {
		t.Fatalf("expected slot_in_past, got %v", err)
	}
}

func TestCreateBooking_Conflict(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	if _, err := uc.Execute(context.Background(), baseInput()); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	in := baseInput()
	in.Time = "10:30" // inside the 10:00-11:30 interval

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_already_booked") {
		t.Fatalf("expected slot_already_booked, got %v", err)
	}
}

func TestCreateBooking_BackToBackAllowed(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	if _, err := uc.Execute(context.Background(), baseInput()); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	in := baseInput()
	in.Time = "11:30" // starts exactly where the first one ends

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("back-to-back booking must pass, got %v", err)
	}
}

// A cancelled booking stops blocking its slot.
func TestCreateBooking_CancelledSlotReopens(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	first, err := uc.Execute(context.Background(), baseInput())
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}

	first.Status = string(domain.StatusCancelledByUser)
	if err := repo.UpdateBooking(context.Background(), first); err != nil {
		t.Fatalf("update: %v", err)
	}

	if _, err := uc.Execute(context.Background(), baseInput()); err != nil {
		t.Fatalf("slot should reopen after cancellation, got %v", err)
	}
}

func TestCreateBooking_HomeService(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	addressID := uint(7)
	in := baseInput()
	in.BookingType = BookingTypeHome
	in.AddressID = &addressID

	b, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.HomeServiceCharge != 100 {
		t.Fatalf("expected surcharge 100, got %v", b.HomeServiceCharge)
	}
	if b.TotalServiceAmount != 1800 {
		t.Fatalf("expected total 1800 with surcharge, got %v", b.TotalServiceAmount)
	}
	if b.SalonEarning != 1530 {
		t.Fatalf("surcharge must not raise earning, got %v", b.SalonEarning)
	}
	if b.AddressID == nil || *b.AddressID != addressID {
		t.Fatalf("expected address %d on the booking, got %v", addressID, b.AddressID)
	}
}

func TestCreateBooking_HomeServiceErrors(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	in := baseInput()
	in.BookingType = BookingTypeHome

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "address_not_found") {
		t.Fatalf("missing address: expected address_not_found, got %v", err)
	}

	foreign := uint(99)
	in.AddressID = &foreign
	_, err = uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "address_not_found") {
		t.Fatalf("unknown address: expected address_not_found, got %v", err)
	}

	salon := repo.salons[1]
	salon.HomeServiceAvailable = false
	repo.salons[1] = salon

	addressID := uint(7)
	in.AddressID = &addressID
	_, err = uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "home_service_unavailable") {
		t.Fatalf("expected home_service_unavailable, got %v", err)
	}
}

func TestCreateBooking_UnknownActors(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	in := baseInput()
	in.UserID = 42
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "user_not_found") {
		t.Fatalf("expected user_not_found, got %v", err)
	}

	in = baseInput()
	in.SalonID = 42
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "salon_not_found") {
		t.Fatalf("expected salon_not_found, got %v", err)
	}
}

// Concurrent admissions for the same slot: exactly one wins, every
// other request loses with slot_already_booked.
func TestCreateBooking_RaceSingleWinner(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	const attempts = 8

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), baseInput())
		}(i)
	}
	wg.Wait()

	won, lost := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case httperr.IsBusiness(err, "slot_already_booked"):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if won != 1 {
		t.Fatalf("expected exactly 1 winner, got %d", won)
	}
	if lost != attempts-1 {
		t.Fatalf("expected %d losers, got %d", attempts-1, lost)
	}
}
