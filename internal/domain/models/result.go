package models

// Source tells callers whether data came from the upstream backend.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Result wraps data with its provenance so a UI can show an
// "estimated data" badge without losing availability.
type Result[T any] struct {
	Data   T      `json:"data"`
	Source Source `json:"source"`
	Reason string `json:"reason,omitempty"`
}

// Live marks data as coming from the upstream backend.
func Live[T any](data T) Result[T] {
	return Result[T]{Data: data, Source: SourceLive}
}

// Fallback marks data as synthesized or curated, with the reason the live path was skipped.
func Fallback[T any](data T, reason string) Result[T] {
	return Result[T]{Data: data, Source: SourceFallback, Reason: reason}
}

func (r Result[T]) IsFallback() bool { return r.Source == SourceFallback }

// FuturesResult is the result of a futures snapshot fetch.
type FuturesResult = Result[Snapshot]
