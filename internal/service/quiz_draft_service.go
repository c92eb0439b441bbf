package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/annamandarin/gamify/config"
	"github.com/annamandarin/gamify/internal/dto"
	"github.com/annamandarin/gamify/internal/model"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// QuizDraftService asks the LLM for candidate multiple-choice questions on a
// topic. Drafts are returned to the admin for review, never persisted here.
type QuizDraftService interface {
	DraftQuestions(topic string, count int, difficulty model.Difficulty) ([]dto.DraftQuestionDTO, error)
}

type quizDraftService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewQuizDraftService(cfg *config.Config) (QuizDraftService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. QuizDraftService will be non-functional.")
		return &quizDraftService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &quizDraftService{client: model, cfg: cfg}, nil
}

func (s *quizDraftService) DraftQuestions(topic string, count int, difficulty model.Difficulty) ([]dto.DraftQuestionDTO, error) {
	if s.client == nil {
		return nil, fmt.Errorf("gemini client not initialized; set GEMINI_API_KEY to enable quiz drafting")
	}
	if !difficulty.Valid() {
		return nil, fmt.Errorf("invalid difficulty %q", difficulty)
	}

	prompt := buildDraftPrompt(topic, count, difficulty)
	resp, err := s.client.GenerateContent(context.Background(), genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Gemini API error during quiz drafting")
		return nil, fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return nil, fmt.Errorf("gemini returned no content")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw.WriteString(string(txt))
		}
	}

	drafts, err := parseDraftResponse(raw.String())
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw.String()).Msg("Failed to parse drafted questions from Gemini response")
		return nil, err
	}
	return drafts, nil
}

func buildDraftPrompt(topic string, count int, difficulty model.Difficulty) string {
	var b strings.Builder
	b.WriteString("You are a Mandarin Chinese teacher preparing quiz material for young learners.\n")
	fmt.Fprintf(&b, "Write %d multiple-choice questions about: %s.\n", count, topic)
	fmt.Fprintf(&b, "Target difficulty: %s.\n\n", difficulty)
	b.WriteString("Each question must have exactly four options with exactly one correct option.\n")
	b.WriteString("Respond strictly with a JSON array and nothing else, in this shape:\n")
	b.WriteString(`[{"prompt": "...", "options": [{"text": "...", "is_correct": true}, {"text": "...", "is_correct": false}]}]`)
	b.WriteString("\n")
	return b.String()
}

// parseDraftResponse extracts the JSON array from the model output; LLMs
// routinely wrap JSON in markdown fences despite instructions.
func parseDraftResponse(raw string) ([]dto.DraftQuestionDTO, error) {
	trimmed := strings.TrimSpace(raw)
	if start := strings.Index(trimmed, "["); start >= 0 {
		if end := strings.LastIndex(trimmed, "]"); end > start {
			trimmed = trimmed[start : end+1]
		}
	}

	var drafts []dto.DraftQuestionDTO
	if err := json.Unmarshal([]byte(trimmed), &drafts); err != nil {
		return nil, fmt.Errorf("could not parse drafted questions: %w", err)
	}

	for i, d := range drafts {
		correct := 0
		for _, o := range d.Options {
			if o.IsCorrect {
				correct++
			}
		}
		if len(d.Options) != 4 || correct != 1 {
			return nil, fmt.Errorf("draft %d is malformed: %d options, %d marked correct", i+1, len(d.Options), correct)
		}
	}
	return drafts, nil
}
