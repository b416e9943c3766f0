package engine

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/tatianab/worldle/internal/game"
	"github.com/tatianab/worldle/internal/models"
	"google.golang.org/api/option"
)

//go:embed prompts/hint.txt
var hintPrompt string

var hintTemplate = template.Must(template.New("hint").Parse(hintPrompt))

const redacted = "?????"

// Engine asks Gemini for hints about the hidden country.
type Engine struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewEngine(ctx context.Context, apiKey, modelName string) (*Engine, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &Engine{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (e *Engine) Close() {
	e.client.Close()
}

// Hint returns a one-sentence clue about target. number counts the hints
// already given this round, starting at 1, and makes later hints sharper.
func (e *Engine) Hint(ctx context.Context, target models.Country, guesses []game.Result, number int) (string, error) {
	prompt, err := buildHintPrompt(target, guesses, number)
	if err != nil {
		return "", err
	}

	resp, err := e.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}

	hint := cleanHint(string(text), target)
	log.Debug().Str("target", target.Code).Int("number", number).Str("hint", hint).Msg("hint generated")
	return hint, nil
}

func buildHintPrompt(target models.Country, guesses []game.Result, number int) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Name       string
		Population int64
		Area       float64
		Guesses    []game.Result
		Number     int
	}{
		Name:       target.Name,
		Population: target.Population,
		Area:       target.Area,
		Guesses:    guesses,
		Number:     number,
	}
	if err := hintTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// cleanHint trims model output down to the hint and hides the answer if the
// model named it anyway.
func cleanHint(text string, target models.Country) string {
	hint := strings.TrimSpace(text)
	hint = strings.TrimPrefix(hint, "```")
	hint = strings.TrimSuffix(hint, "```")
	hint = strings.Trim(hint, "\"` \n")

	leak := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(target.Name) + `\b`)
	return leak.ReplaceAllString(hint, redacted)
}
