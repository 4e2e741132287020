package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Fixed user-facing texts for provider failures. Handlers must never leave
// the user without a reply, so every error path maps to one of these.
const (
	ExplainApology = "Извините, произошла ошибка при получении объяснения. Попробуйте позже."
	AnswerApology  = "Извините, произошла ошибка при анализе вопроса. Попробуйте позже."
)

// defaultTimeout bounds every outbound provider call
const defaultTimeout = 10 * time.Second

// api is the slice of the OpenAI client the provider uses
type api interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateImage(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error)
}

// HistoryFact is a generated historical fact with an attached trivia question
type HistoryFact struct {
	History       string `json:"history"`
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"` // A, B or C
	Explanation   string `json:"explanation"`
}

// Client wraps the OpenAI API as the course's explanation/meme provider
type Client struct {
	api     api
	timeout time.Duration
}

// New creates a provider client with the given API key
func New(apiKey string) *Client {
	return &Client{
		api:     openai.NewClient(apiKey),
		timeout: defaultTimeout,
	}
}

// Explain returns an explanation of an ML concept. On any provider error
// the fixed apology text is returned instead.
func (c *Client) Explain(ctx context.Context, topic string) string {
	prompt := fmt.Sprintf("Объясните концепцию: %s", topic)
	system := "Вы - опытный преподаватель машинного обучения. " +
		"Объясняйте концепции просто и понятно, с примерами из реальной жизни. " +
		"Используйте эмодзи для лучшего восприятия. " +
		"Ответ должен быть на русском языке. " +
		"После объяснения добавьте один вопрос для проверки понимания материала."

	answer, err := c.complete(ctx, system, prompt, nil)
	if err != nil {
		log.Printf("Error getting ML explanation: %v", err)
		return ExplainApology
	}
	return answer
}

// AnswerQuestion answers a free-form question about machine learning. On
// any provider error the fixed apology text is returned instead.
func (c *Client) AnswerQuestion(ctx context.Context, question string) string {
	system := "Вы - эксперт по машинному обучению. " +
		"Отвечайте на вопросы детально, но доступно. " +
		"Если вопрос не связан с ML, вежливо укажите на это. " +
		"Используйте эмодзи для лучшего восприятия. " +
		"Ответ должен быть на русском языке."

	answer, err := c.complete(ctx, system, question, nil)
	if err != nil {
		log.Printf("Error analyzing ML question: %v", err)
		return AnswerApology
	}
	return answer
}

// GenerateMeme generates an educational ML meme and returns the image URL
func (c *Client) GenerateMeme(ctx context.Context, concept string) (string, error) {
	prompt := "Create a funny educational meme about machine learning"
	if concept != "" {
		prompt = fmt.Sprintf("Create a funny educational meme about %s in machine learning", concept)
	}
	prompt += ", with text overlays in English, in the style of modern internet memes, " +
		"use simple but humorous tech explanations, keep it educational and witty"

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateImage(ctx, openai.ImageRequest{
		Model:   openai.CreateImageModelDallE3,
		Prompt:  prompt,
		N:       1,
		Size:    openai.CreateImageSize1024x1024,
		Quality: openai.CreateImageQualityStandard,
		Style:   openai.CreateImageStyleVivid,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate meme: %v", err)
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("image response contains no data")
	}
	return resp.Data[0].URL, nil
}

// RandomHistoryFact generates a historical fact about ML with a trivia
// question. The model is asked for a JSON object; a malformed payload is
// reported as an error, never passed through.
func (c *Client) RandomHistoryFact(ctx context.Context) (*HistoryFact, error) {
	system := "Создайте случайную историческую справку о машинном обучении. " +
		"Включите конкретный год, значимое событие и его влияние на развитие ML. " +
		"После справки добавьте тестовый вопрос с вариантами ответа (A, B, C) и объяснение правильного ответа. " +
		"Верните ответ в формате JSON со следующими полями: " +
		"history (текст справки), question (текст вопроса), " +
		"correct_answer (A, B или C), explanation (объяснение правильного ответа). " +
		"Ответ должен быть на русском языке."

	raw, err := c.complete(ctx, system, "Сгенерируйте историческую справку и тестовый вопрос",
		&openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject})
	if err != nil {
		return nil, err
	}

	var fact HistoryFact
	if err := json.Unmarshal([]byte(raw), &fact); err != nil {
		return nil, fmt.Errorf("failed to parse history fact: %v", err)
	}

	fact.CorrectAnswer = strings.ToUpper(strings.TrimSpace(fact.CorrectAnswer))
	switch fact.CorrectAnswer {
	case "A", "B", "C":
	default:
		return nil, fmt.Errorf("history fact has invalid correct_answer %q", fact.CorrectAnswer)
	}
	if fact.History == "" || fact.Question == "" {
		return nil, fmt.Errorf("history fact is incomplete")
	}

	return &fact, nil
}

// complete sends a single system+user exchange and returns the trimmed reply
func (c *Client) complete(ctx context.Context, system, user string, format *openai.ChatCompletionResponseFormat) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:      1000,
		ResponseFormat: format,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
