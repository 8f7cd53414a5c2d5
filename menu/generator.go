// Package menu drafts a week of meal plans with a text-generation model.
//
// The model reply is free text expected to contain a JSON object keyed by the
// three-letter weekday abbreviations Mon..Sun; anything that doesn't parse as
// exactly that shape is discarded whole, so a bad reply can never partially
// overwrite existing plans.
package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/luminary-app/luminary"
	"github.com/luminary-app/luminary/date"
	"google.golang.org/genai"
)

// NotConfigured is the fixed degraded reply when no API key is available.
const NotConfigured = "Please configure your API Key to use the menu generator."

// TextGenerator produces free text from a free-text prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Gemini is the production TextGenerator.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGenerator returns the Gemini-backed generator, or a degraded one that
// always answers NotConfigured when no API key is set.
func NewGenerator(ctx context.Context, model string) (TextGenerator, error) {
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		return notConfigured{}, nil
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not initialize the text-generation client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no suggestion available")
	}
	return text, nil
}

type notConfigured struct{}

func (notConfigured) Generate(context.Context, string) (string, error) {
	return NotConfigured, nil
}

// Prompt builds the meal-plan request. Ingredients and cuisine style are both
// optional free text.
func Prompt(ingredients, cuisine string) string {
	cuisinePrompt := "."
	if cuisine != "" {
		cuisinePrompt = fmt.Sprintf(" focusing on %s cuisine style.", cuisine)
	}
	basePrompt := fmt.Sprintf("based on a balanced, nutrient-dense diet%s", cuisinePrompt)
	if strings.TrimSpace(ingredients) != "" {
		basePrompt = fmt.Sprintf("using these ingredients if possible: %q. You can add common pantry items.%s", ingredients, cuisinePrompt)
	}

	return fmt.Sprintf(`Generate a 7-day weekly meal plan (Mon, Tue, Wed, Thu, Fri, Sat, Sun) %s
For each day, provide: breakfast, lunch, dinner, snack.
Keep descriptions concise (under 6 words).
IMPORTANT: Return ONLY valid JSON. No markdown formatting. No code blocks.
The keys must be exactly: "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun".
Structure:
{
  "Mon": { "breakfast": "...", "lunch": "...", "dinner": "...", "snack": "..." },
  "Tue": { ... },
  ...
}`, basePrompt)
}

// Parse extracts the week of plans from a model reply. Markdown code fences
// are stripped before parsing; the object must carry exactly the seven
// weekday keys. Any failure returns an error and no plans at all.
func Parse(reply string) (map[string]luminary.MealPlan, error) {
	clean := strings.ReplaceAll(reply, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	plans := make(map[string]luminary.MealPlan)
	if err := json.Unmarshal([]byte(clean), &plans); err != nil {
		return nil, fmt.Errorf("reply is not a meal-plan object: %w", err)
	}
	if len(plans) != len(date.Weekdays) {
		return nil, fmt.Errorf("expected %d weekday plans, got %d", len(date.Weekdays), len(plans))
	}
	for _, weekday := range date.Weekdays {
		if _, ok := plans[weekday]; !ok {
			return nil, fmt.Errorf("missing weekday %q in reply", weekday)
		}
	}
	return plans, nil
}

// GenerateWeek asks the generator for a week of plans and parses the reply.
func GenerateWeek(ctx context.Context, g TextGenerator, ingredients, cuisine string) (map[string]luminary.MealPlan, error) {
	reply, err := g.Generate(ctx, Prompt(ingredients, cuisine))
	if err != nil {
		return nil, err
	}
	plans, err := Parse(reply)
	if err != nil {
		return nil, fmt.Errorf("could not parse the generated menu: %w", err)
	}
	return plans, nil
}
