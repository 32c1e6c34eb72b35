package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/MikyMack/Blushley-full-sub000/internal/models"
)

const scheduleTTL = 5 * time.Minute

// DaySchedule is the cached weekday template plus its break slots.
type DaySchedule struct {
	Template models.WeeklyAvailability `json:"template"`
	Breaks   []models.BreakSlot        `json:"breaks"`
}

// ScheduleCache keeps per-salon weekday templates in Redis. A nil
// receiver or a nil client is a no-op cache, so callers never branch on
// whether Redis is configured.
type ScheduleCache struct {
	rdb *redis.Client
}

func NewScheduleCache(rdb *redis.Client) *ScheduleCache {
	return &ScheduleCache{rdb: rdb}
}

func dayKey(salonID uint, weekday int) string {
	return fmt.Sprintf("salon_schedule:%d:%d", salonID, weekday)
}

func (c *ScheduleCache) GetDay(ctx context.Context, salonID uint, weekday int) (*DaySchedule, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, dayKey(salonID, weekday)).Bytes()
	if err != nil {
		return nil, false
	}

	var day DaySchedule
	if err := json.Unmarshal(raw, &day); err != nil {
		return nil, false
	}
	return &day, true
}

func (c *ScheduleCache) SetDay(ctx context.Context, salonID uint, weekday int, day *DaySchedule) {
	if c == nil || c.rdb == nil || day == nil {
		return
	}

	raw, err := json.Marshal(day)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, dayKey(salonID, weekday), raw, scheduleTTL)
}

// InvalidateSalon drops all seven weekday entries after a schedule update.
func (c *ScheduleCache) InvalidateSalon(ctx context.Context, salonID uint) {
	if c == nil || c.rdb == nil {
		return
	}

	keys := make([]string, 0, 7)
	for wd := 0; wd < 7; wd++ {
		keys = append(keys, dayKey(salonID, wd))
	}
	c.rdb.Del(ctx, keys...)
}
