package domain

// SearchStatus is the outcome of a dispatched search.
type SearchStatus string

// Search outcomes.
const (
	SearchSucceeded SearchStatus = "succeeded"
	SearchFailed    SearchStatus = "failed"
)

// SearchFailureMessage is the single generic, retryable message shown to the agent.
const SearchFailureMessage = "Erro na busca inteligente. Tente novamente."

// SearchResult is the explicit outcome of one search dispatch.
// A failed search carries an empty, non-nil result mapping.
type SearchResult struct {
	// Status is succeeded or failed
	Status SearchStatus `json:"status"`

	// Generation identifies the dispatch that produced this result
	Generation uint64 `json:"generation"`

	// Results maps each returned category to its ordered offers
	Results CategoryResults `json:"results"`

	// Reason is the user-facing failure message (empty on success)
	Reason string `json:"reason,omitempty"`

	// Metadata contains information about the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Err is the underlying cause of a failure, kept for logging only
	Err error `json:"-"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TotalResults is the total number of offers across categories
	TotalResults int `json:"totalResults"`

	// Provider is the name of the collaborator that was queried
	Provider string `json:"provider"`

	// SearchTimeMs is the search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`

	// Stale is true when a newer search superseded this one before it completed
	Stale bool `json:"stale,omitempty"`
}

// NewSucceededResult builds a successful SearchResult.
func NewSucceededResult(results CategoryResults, metadata SearchMetadata) SearchResult {
	if results == nil {
		results = CategoryResults{}
	}
	metadata.TotalResults = results.Count()
	return SearchResult{
		Status:   SearchSucceeded,
		Results:  results,
		Metadata: metadata,
	}
}

// NewFailedResult builds a failed SearchResult with an empty result mapping.
func NewFailedResult(cause error, metadata SearchMetadata) SearchResult {
	metadata.TotalResults = 0
	return SearchResult{
		Status:   SearchFailed,
		Results:  CategoryResults{},
		Reason:   SearchFailureMessage,
		Metadata: metadata,
		Err:      cause,
	}
}

// IsSuccess returns true if the search succeeded.
func (r *SearchResult) IsSuccess() bool {
	return r.Status == SearchSucceeded
}
