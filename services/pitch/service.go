package pitch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	artistModel "stagelink/models/artist"
	venueModel "stagelink/models/venue"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// Suggestion is the assistant's drafted booking message.
type Suggestion struct {
	Message string `json:"message"`
}

// Params carries the context the assistant writes the pitch from.
type Params struct {
	Artist       *artistModel.Artist
	Venue        *venueModel.Venue
	ProposedDate *time.Time
	ProposedFee  *decimal.Decimal
}

// Service drafts booking request messages with the Gemini API.
type Service struct {
	model string
}

func NewService() *Service {
	return &Service{model: "gemini-2.5-flash-lite"}
}

// Suggest generates a short pitch an artist or venue can send with a
// booking request.
func (s *Service) Suggest(ctx context.Context, p Params) (*Suggestion, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	prompt := s.buildPrompt(p)

	content := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	result, err := client.Models.GenerateContent(
		ctx,
		s.model,
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.1)),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate pitch: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content generated")
	}

	responseText := result.Candidates[0].Content.Parts[0].Text
	if responseText == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	jsonText := ExtractJSONFromMarkdown(responseText)

	var suggestion Suggestion
	if err := json.Unmarshal([]byte(jsonText), &suggestion); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, response: %s", err, jsonText)
	}
	if strings.TrimSpace(suggestion.Message) == "" {
		return nil, fmt.Errorf("model returned an empty message")
	}

	return &suggestion, nil
}

func (s *Service) buildPrompt(p Params) string {
	var b strings.Builder

	b.WriteString(`Write a short, friendly booking pitch (2-4 sentences) from a musician to a live music venue. Return ONLY valid JSON.

Required JSON format:
{
"message": string   // The pitch message, plain text, no markdown
}

Context:
`)

	if p.Artist != nil {
		fmt.Fprintf(&b, "Artist stage name: %s\n", p.Artist.StageName)
		if len(p.Artist.Genres) > 0 {
			fmt.Fprintf(&b, "Artist genres: %s\n", strings.Join(p.Artist.Genres, ", "))
		}
		if p.Artist.Bio != nil && *p.Artist.Bio != "" {
			fmt.Fprintf(&b, "Artist bio: %s\n", *p.Artist.Bio)
		}
	}
	if p.Venue != nil {
		fmt.Fprintf(&b, "Venue name: %s\n", p.Venue.Name)
		if p.Venue.City != "" {
			fmt.Fprintf(&b, "Venue city: %s\n", p.Venue.City)
		}
		if p.Venue.Capacity > 0 {
			fmt.Fprintf(&b, "Venue capacity: %d\n", p.Venue.Capacity)
		}
	}
	if p.ProposedDate != nil {
		fmt.Fprintf(&b, "Proposed date: %s\n", p.ProposedDate.Format("Monday, January 2, 2006"))
	}
	if p.ProposedFee != nil {
		fmt.Fprintf(&b, "Proposed fee: %s\n", p.ProposedFee.StringFixed(2))
	}

	return b.String()
}

// ExtractJSONFromMarkdown strips markdown code fences the model sometimes
// wraps its JSON in.
func ExtractJSONFromMarkdown(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") && strings.HasSuffix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") {
		lines := strings.Split(text, "\n")
		if len(lines) > 1 {
			return strings.Join(lines[1:len(lines)-1], "\n")
		}
	}

	return text
}
