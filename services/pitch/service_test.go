package pitch

import (
	"testing"
	"time"

	artistModel "stagelink/models/artist"
	userModel "stagelink/models/user"
	venueModel "stagelink/models/venue"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExtractJSONFromMarkdown(t *testing.T) {
	plain := `{"message": "Hello"}`
	assert.Equal(t, plain, ExtractJSONFromMarkdown(plain))

	fenced := "```json\n{\"message\": \"Hello\"}\n```"
	assert.Equal(t, plain, ExtractJSONFromMarkdown(fenced))

	generic := "```\n{\"message\": \"Hello\"}\n```"
	assert.Equal(t, plain, ExtractJSONFromMarkdown(generic))

	padded := "  \n```json\n{\"message\": \"Hello\"}\n```\n  "
	assert.Equal(t, plain, ExtractJSONFromMarkdown(padded))
}

func TestBuildPromptIncludesContext(t *testing.T) {
	svc := NewService()

	bio := "Four-piece blues rock band."
	date := time.Date(2026, time.October, 3, 20, 0, 0, 0, time.UTC)
	fee := decimal.NewFromInt(500)

	prompt := svc.buildPrompt(Params{
		Artist: &artistModel.Artist{
			StageName: "The Midnight Drifters",
			Bio:       &bio,
			Genres:    userModel.StringList{"blues", "rock"},
		},
		Venue: &venueModel.Venue{
			Name:     "The Blue Note",
			City:     "Portland",
			Capacity: 180,
		},
		ProposedDate: &date,
		ProposedFee:  &fee,
	})

	assert.Contains(t, prompt, "The Midnight Drifters")
	assert.Contains(t, prompt, "blues, rock")
	assert.Contains(t, prompt, "The Blue Note")
	assert.Contains(t, prompt, "Portland")
	assert.Contains(t, prompt, "180")
	assert.Contains(t, prompt, "500.00")
	assert.Contains(t, prompt, "Saturday, October 3, 2026")
}

func TestBuildPromptHandlesSparseContext(t *testing.T) {
	svc := NewService()

	prompt := svc.buildPrompt(Params{
		Artist: &artistModel.Artist{StageName: "DJ Pulse"},
		Venue:  &venueModel.Venue{Name: "Warehouse 9"},
	})

	assert.Contains(t, prompt, "DJ Pulse")
	assert.Contains(t, prompt, "Warehouse 9")
	assert.NotContains(t, prompt, "Proposed fee")
	assert.NotContains(t, prompt, "Proposed date")
}
