package models

import "fmt"

// OutcomeKind classifies what happened to one restaurant during an enrichment pass.
type OutcomeKind string

const (
	// OutcomeUpdated means a place was found and persisted.
	OutcomeUpdated OutcomeKind = "updated"
	// OutcomeNotFound means every query variant returned no result.
	OutcomeNotFound OutcomeKind = "not_found"
	// OutcomeFailed means the restaurant could not be processed.
	OutcomeFailed OutcomeKind = "failed"
	// OutcomeSkipped means the restaurant already had complete location data.
	OutcomeSkipped OutcomeKind = "skipped"
	// OutcomeInterrupted means processing stopped because the pass was cancelled.
	// It is not folded into a BatchResult.
	OutcomeInterrupted OutcomeKind = "interrupted"
)

// Outcome is the result of enriching a single restaurant. It is never persisted.
type Outcome struct {
	Kind   OutcomeKind
	Query  string // Query is the variant that produced the place, if any.
	Place  *Place
	Reason string
}

// Updated builds an outcome for a persisted place.
func Updated(query string, place Place) Outcome {
	return Outcome{Kind: OutcomeUpdated, Query: query, Place: &place}
}

// NotFound builds an outcome for a restaurant no variant matched.
func NotFound() Outcome {
	return Outcome{Kind: OutcomeNotFound}
}

// Skipped builds an outcome for an already complete restaurant.
func Skipped() Outcome {
	return Outcome{Kind: OutcomeSkipped}
}

// Failed builds an outcome carrying the failure reason.
func Failed(err error) Outcome {
	return Outcome{Kind: OutcomeFailed, Reason: err.Error()}
}

// Interrupted builds an outcome for a restaurant whose processing was cancelled midway.
func Interrupted(err error) Outcome {
	return Outcome{Kind: OutcomeInterrupted, Reason: err.Error()}
}

// BatchResult aggregates outcomes across one enrichment pass.
type BatchResult struct {
	RunID   string `json:"runId,omitempty"`
	Total   int    `json:"total"`
	Success int    `json:"success"`
	Failed  int    `json:"failed"`
	Skipped int    `json:"skipped"`
}

// Add folds one outcome into the aggregate counters.
func (b *BatchResult) Add(outcome Outcome) {
	switch outcome.Kind {
	case OutcomeUpdated:
		b.Success++
	case OutcomeFailed:
		b.Failed++
	case OutcomeNotFound, OutcomeSkipped:
		b.Skipped++
	}
}

func (b BatchResult) String() string {
	return fmt.Sprintf("BatchResult{total=%d, success=%d, failed=%d, skipped=%d}",
		b.Total, b.Success, b.Failed, b.Skipped)
}

// LocationStatus summarizes how many restaurants have location data.
type LocationStatus struct {
	TotalRestaurants           int64  `json:"totalRestaurants"`
	RestaurantsWithLocation    int64  `json:"restaurantsWithLocation"`
	RestaurantsWithoutLocation int64  `json:"restaurantsWithoutLocation"`
	CompletionRate             string `json:"completionRate"`
}

// NewLocationStatus derives the status from the total and located counts.
func NewLocationStatus(total, located int64) LocationStatus {
	rate := 0.0
	if total > 0 {
		rate = float64(located) / float64(total) * 100
	}

	return LocationStatus{
		TotalRestaurants:           total,
		RestaurantsWithLocation:    located,
		RestaurantsWithoutLocation: total - located,
		CompletionRate:             fmt.Sprintf("%.2f%%", rate),
	}
}
