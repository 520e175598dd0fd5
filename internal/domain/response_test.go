package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSucceededResult(t *testing.T) {
	tests := []struct {
		name             string
		results          CategoryResults
		metadata         SearchMetadata
		wantTotalResults int
	}{
		{
			name: "counts offers across categories",
			results: CategoryResults{
				CategoryFlight: {{ID: "f1"}, {ID: "f2"}},
				CategoryHotel:  {{ID: "h1"}},
			},
			metadata:         SearchMetadata{Provider: "gemini", SearchTimeMs: 1200},
			wantTotalResults: 3,
		},
		{
			name:             "nil results become empty mapping",
			results:          nil,
			metadata:         SearchMetadata{Provider: "fixture"},
			wantTotalResults: 0,
		},
		{
			name:             "category present with no offers",
			results:          CategoryResults{CategoryTransfer: {}},
			wantTotalResults: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewSucceededResult(tt.results, tt.metadata)

			assert.True(t, res.IsSuccess())
			assert.Equal(t, SearchSucceeded, res.Status)
			assert.NotNil(t, res.Results)
			assert.Empty(t, res.Reason)
			assert.Nil(t, res.Err)
			assert.Equal(t, tt.wantTotalResults, res.Metadata.TotalResults)
			assert.Equal(t, tt.metadata.Provider, res.Metadata.Provider)
		})
	}
}

func TestNewFailedResult(t *testing.T) {
	cause := errors.New("boom")
	res := NewFailedResult(cause, SearchMetadata{Provider: "gemini", TotalResults: 9})

	assert.False(t, res.IsSuccess())
	assert.Equal(t, SearchFailed, res.Status)
	assert.NotNil(t, res.Results)
	assert.Empty(t, res.Results)
	assert.Equal(t, SearchFailureMessage, res.Reason)
	assert.Equal(t, 0, res.Metadata.TotalResults)
	assert.ErrorIs(t, res.Err, cause)
}

func TestSearchResult_JSON(t *testing.T) {
	t.Run("failed result serializes empty results object", func(t *testing.T) {
		res := NewFailedResult(errors.New("hidden"), SearchMetadata{Provider: "gemini"})
		data, err := json.Marshal(res)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, map[string]any{}, got["results"])
		assert.Equal(t, "failed", got["status"])
		assert.NotContains(t, string(data), "hidden")
	})

	t.Run("succeeded result keys results by category", func(t *testing.T) {
		res := NewSucceededResult(CategoryResults{
			CategoryHotel: {{ID: "h1", Category: CategoryHotel, Price: decimal.NewFromInt(450)}},
		}, SearchMetadata{})
		data, err := json.Marshal(res)
		require.NoError(t, err)

		assert.Contains(t, string(data), `"HOTEL":[`)
		assert.Contains(t, string(data), `"price":"450"`)
	})
}
