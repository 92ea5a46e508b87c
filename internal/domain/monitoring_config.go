package domain

import "time"

// DefaultCheckMinutes is 02:00 local time.
const DefaultCheckMinutes = 120

// SchedulerBucketMinutes quantizes minutes-of-day so a coarse tick cadence
// still matches a merchant's preferred minute despite jitter.
const SchedulerBucketMinutes = 15

// MerchantMonitoringConfig holds a merchant's preferred local time of day
// for the daily post-auth sweep. LastRunLocalDayKey ("YYYY-MM-DD" in the
// merchant's local date) is the idempotency marker: at most one completed
// sweep per merchant per distinct day key.
type MerchantMonitoringConfig struct {
	MerchantID            string
	PreferredCheckMinutes int
	TimezoneOffsetMinutes int
	LastRunLocalDayKey    string
}

// LocalMinutes converts a UTC instant to the merchant's local
// minutes-of-day. The offset convention is local = utc - offset.
func (c *MerchantMonitoringConfig) LocalMinutes(nowUtc time.Time) int {
	utcMinutes := nowUtc.UTC().Hour()*60 + nowUtc.UTC().Minute()
	return ((utcMinutes-c.TimezoneOffsetMinutes)%1440 + 1440) % 1440
}

// LocalDayKey renders the merchant-local calendar date as "YYYY-MM-DD".
func (c *MerchantMonitoringConfig) LocalDayKey(nowUtc time.Time) string {
	local := nowUtc.UTC().Add(-time.Duration(c.TimezoneOffsetMinutes) * time.Minute)
	return local.Format("2006-01-02")
}

// Due reports whether nowUtc falls into the same 15-minute bucket as the
// merchant's preferred check time.
func (c *MerchantMonitoringConfig) Due(nowUtc time.Time) bool {
	return c.LocalMinutes(nowUtc)/SchedulerBucketMinutes == c.PreferredCheckMinutes/SchedulerBucketMinutes
}
