package domain

import (
	"context"
	"time"
)

// ValidationFreshnessDays bounds how long an external lookup result may be
// reused before a refresh is required.
const ValidationFreshnessDays = 30

type SubjectKind string

const (
	SubjectEmail SubjectKind = "email"
	SubjectPhone SubjectKind = "phone"
	SubjectIP    SubjectKind = "ip"
)

// ValidationResult is the outcome of one external reputation lookup for a
// single subject (normalized email, phone or IP address).
type ValidationResult struct {
	SubjectKey string
	Kind       SubjectKind
	Score      float64
	Flags      []string
}

type ValidationCacheEntry struct {
	SubjectKey string
	Kind       SubjectKind
	Score      float64
	FlagsJSON  string
	FetchedAt  time.Time
}

func (e *ValidationCacheEntry) Stale(now time.Time) bool {
	return now.Sub(e.FetchedAt) > ValidationFreshnessDays*24*time.Hour
}

// ValidationProvider is the paid external reputation service. Lookups carry
// a timeout via ctx; a timeout or provider error degrades the assessment to
// Layer-1-only scoring.
type ValidationProvider interface {
	Lookup(ctx context.Context, kind SubjectKind, subjectKey string) (*ValidationResult, error)
}

type ValidationCacheRepository interface {
	Get(subjectKey string) (*ValidationCacheEntry, error)
	Upsert(entry *ValidationCacheEntry) error
}
