package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"recruiter_hub_backend/internal/config"
	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/pkg/logger"

	"go.uber.org/zap"
)

// noAnswerMarker is what the model is told to emit when the library cannot
// answer the question. Stripped before the text reaches the client.
const noAnswerMarker = "NO_ANSWER:"

var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

type AIService struct {
	mu       sync.RWMutex
	cfg      config.AIConfig
	client   *http.Client
	Contents *repository.ContentRepository
}

func NewAIService(cfg config.AIConfig, contents *repository.ContentRepository) *AIService {
	return &AIService{
		cfg:      cfg,
		client:   &http.Client{Timeout: 15 * time.Second},
		Contents: contents,
	}
}

// SetConfig swaps the endpoint settings at runtime, used by the config
// watcher.
func (s *AIService) SetConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

func (s *AIService) config() config.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) Chat(systemPrompt, userPrompt string) (string, error) {
	cfg := s.config()

	messages := []AIChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}

	reqBody := ChatCompletionRequest{
		Model:    cfg.Model,
		Messages: messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}

type GeneratedContent struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Tags   []string `json:"tags"`
	IsDemo bool     `json:"isDemo"`
}

// Generate drafts a content item from a prompt. Without an API key it serves
// a canned template so the feature stays demoable.
func (s *AIService) Generate(prompt, contentType string) (*GeneratedContent, error) {
	if s.config().APIKey == "" {
		return demoGeneratedContent(prompt, contentType), nil
	}

	systemPrompt := fmt.Sprintf(
		"You are a recruiting enablement writer. Draft a %s in markdown for an internal recruiting team. "+
			"Start with a single H1 title line. Be specific and practical.", generationKind(contentType))

	body, err := s.Chat(systemPrompt, prompt)
	if err != nil {
		logger.Log.Warn("AI generation failed, serving demo content", zap.Error(err))
		return demoGeneratedContent(prompt, contentType), nil
	}

	result := &GeneratedContent{
		Title: extractTitle(body, prompt),
		Body:  body,
		Tags:  s.suggestTags(body),
	}
	return result, nil
}

func generationKind(contentType string) string {
	switch contentType {
	case string(model.ContentChecklist):
		return "step-by-step checklist"
	case string(model.ContentPlaybook):
		return "playbook with scenarios and scripts"
	default:
		return "how-to document"
	}
}

func extractTitle(body, fallback string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	if len(fallback) > 80 {
		fallback = fallback[:80]
	}
	return fallback
}

func (s *AIService) suggestTags(text string) []string {
	raw, err := s.Chat(
		"Suggest 3-5 short lowercase tags for the given recruiting content. Respond with a JSON array of strings only.",
		text,
	)
	if err != nil {
		return []string{"general"}
	}

	match := jsonArrayPattern.FindString(raw)
	if match == "" {
		return []string{"general"}
	}

	var tags []string
	if err := json.Unmarshal([]byte(match), &tags); err != nil || len(tags) == 0 {
		return []string{"general"}
	}
	return tags
}

// rankByRelevance asks the model to order the candidates by relevance to the
// query and returns the ids it picked, best first.
func (s *AIService) rankByRelevance(query string, candidates []model.Content) ([]string, error) {
	var sb strings.Builder
	for _, c := range candidates {
		fmt.Fprintf(&sb, "- id: %s | title: %s | description: %s | tags: %s\n", c.ID, c.Title, c.Description, c.Tags)
	}

	raw, err := s.Chat(
		"You rank internal recruiting documents by relevance to a query. "+
			"Respond with a JSON array of document ids only, most relevant first. Omit irrelevant documents.",
		fmt.Sprintf("Query: %s\n\nDocuments:\n%s", query, sb.String()),
	)
	if err != nil {
		return nil, err
	}

	match := jsonArrayPattern.FindString(raw)
	if match == "" {
		return nil, fmt.Errorf("no JSON array in ranking response")
	}

	var ids []string
	if err := json.Unmarshal([]byte(match), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Search finds published content for a query: LLM-ranked when a key is
// configured, keyword matching otherwise.
func (s *AIService) Search(query string) ([]ContentView, error) {
	published, err := s.Contents.List("", "", "", string(model.StatusPublished), 200)
	if err != nil {
		return nil, err
	}

	var matched []model.Content

	if s.config().APIKey == "" {
		matched = keywordSearch(query, published)
	} else {
		ids, err := s.rankByRelevance(query, published)
		if err != nil {
			logger.Log.Warn("AI ranking failed, using keyword search", zap.Error(err))
			matched = keywordSearch(query, published)
		} else {
			byID := make(map[string]model.Content, len(published))
			for _, c := range published {
				byID[c.ID] = c
			}
			for _, id := range ids {
				if c, ok := byID[id]; ok {
					matched = append(matched, c)
				}
			}
		}
	}

	views := make([]ContentView, 0, len(matched))
	for _, c := range matched {
		views = append(views, toContentView(c))
	}
	return views, nil
}

type AnswerSource struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type CopilotAnswer struct {
	Answer    string         `json:"answer"`
	CanAnswer bool           `json:"canAnswer"`
	Sources   []AnswerSource `json:"sources"`
	IsDemo    bool           `json:"isDemo,omitempty"`
}

// Answer grounds a response in the published library. The model is told to
// prefix with the no-answer marker when the context does not cover the
// question, which maps to CanAnswer=false.
func (s *AIService) Answer(question string) (*CopilotAnswer, error) {
	if s.config().APIKey == "" {
		return demoAnswer(question), nil
	}

	published, err := s.Contents.List("", "", "", string(model.StatusPublished), 200)
	if err != nil {
		return nil, err
	}

	ids, err := s.rankByRelevance(question, published)
	if err != nil {
		logger.Log.Warn("AI ranking failed, serving demo answer", zap.Error(err))
		return demoAnswer(question), nil
	}

	byID := make(map[string]model.Content, len(published))
	for _, c := range published {
		byID[c.ID] = c
	}

	var top []model.Content
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			top = append(top, c)
			if len(top) == 5 {
				break
			}
		}
	}

	var context strings.Builder
	for _, c := range top {
		fmt.Fprintf(&context, "## %s\n%s\n\n%s\n\n", c.Title, c.Description, c.Body)
	}

	systemPrompt := "You are a recruiting copilot. Answer using only the provided internal documents. " +
		"If the documents do not cover the question, start your reply with \"" + noAnswerMarker + "\" " +
		"followed by a short note on what is missing."

	raw, err := s.Chat(systemPrompt, fmt.Sprintf("Documents:\n\n%s\nQuestion: %s", context.String(), question))
	if err != nil {
		logger.Log.Warn("AI answer failed, serving demo answer", zap.Error(err))
		return demoAnswer(question), nil
	}

	result := &CopilotAnswer{
		Answer:    raw,
		CanAnswer: true,
		Sources:   make([]AnswerSource, 0, 3),
	}

	if strings.HasPrefix(raw, noAnswerMarker) {
		result.CanAnswer = false
		result.Answer = strings.TrimSpace(strings.TrimPrefix(raw, noAnswerMarker))
	} else if strings.Contains(raw, "don't have specific information") {
		// Older prompt versions phrased refusals this way.
		result.CanAnswer = false
	}

	for i, c := range top {
		if i == 3 {
			break
		}
		result.Sources = append(result.Sources, AnswerSource{ID: c.ID, Title: c.Title})
	}

	return result, nil
}
