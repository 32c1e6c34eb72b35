package cache

import (
	"context"
	"testing"
)

// Without Redis configured the cache must behave as a silent miss.
func TestScheduleCache_NilSafe(t *testing.T) {
	ctx := context.Background()

	for _, c := range []*ScheduleCache{nil, NewScheduleCache(nil)} {
		if _, ok := c.GetDay(ctx, 1, 0); ok {
			t.Fatal("expected miss from disabled cache")
		}
		c.SetDay(ctx, 1, 0, &DaySchedule{})
		c.InvalidateSalon(ctx, 1)
	}
}

func TestDayKey(t *testing.T) {
	if got := dayKey(12, 3); got != "salon_schedule:12:3" {
		t.Fatalf("dayKey = %q", got)
	}
}
