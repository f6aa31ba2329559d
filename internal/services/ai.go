package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/gamedevhub/board-api/internal/models"
	"github.com/sashabaranov/go-openai"
)

// enhanceFailureNotice is returned when the enhancement call fails for any
// reason. AI failures never block a board mutation.
const enhanceFailureNotice = "Failed to enhance description."

var cannedIdeas = []string{
	"Mocked Idea: Consider a dynamic weather system.",
	"Mocked Idea: What if the character had a pet companion?",
	"Mocked Idea: Add a secret level accessible through an easter egg.",
}

const cannedEnhancement = "**Mocked AI Enhancement:**\n- Sub-task: Define asset requirements.\n- Acceptance: The feature works as described in the main ticket."

// AIService generates creative task suggestions via the OpenAI chat API.
// Without an API key it serves deterministic canned responses, so the board
// stays fully functional offline.
type AIService struct {
	client *openai.Client
}

// NewAIService creates an AIService. An empty apiKey yields the offline
// fallback service.
func NewAIService(apiKey string) *AIService {
	if apiKey == "" {
		log.Println("OPENAI_API_KEY is not set, AI features will serve canned responses")
		return &AIService{}
	}
	return &AIService{client: openai.NewClient(apiKey)}
}

// GenerateIdeas returns three short creative suggestions for the task. Any
// failure (network, parse, missing credentials) degrades to an empty list.
func (s *AIService) GenerateIdeas(ctx context.Context, task models.Task) []string {
	if s.client == nil {
		return append([]string(nil), cannedIdeas...)
	}

	prompt := fmt.Sprintf(`You are a creative assistant for a game development team.
Based on the following task, generate 3 distinct and creative ideas to help the team.
The ideas should be concise, actionable, and inspiring.
Format the output as a JSON array of strings.

Task Title: %s
Task Description: %s
Task Category: %s

Example response:
["Idea 1...", "Idea 2...", "Idea 3..."]`, task.Title, task.Description, task.Category)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.8,
		},
	)
	if err != nil {
		log.Printf("Error generating creative ideas: %v", err)
		return []string{}
	}
	if len(resp.Choices) == 0 {
		return []string{}
	}

	var ideas []string
	if err := json.Unmarshal([]byte(stripCodeFence(resp.Choices[0].Message.Content)), &ideas); err != nil {
		log.Printf("Failed to parse AI response: %v", err)
		return []string{}
	}
	return ideas
}

// EnhanceDescription expands a task description with sub-tasks and
// acceptance criteria. Any failure degrades to a fixed notice string.
func (s *AIService) EnhanceDescription(ctx context.Context, title, description string) string {
	if s.client == nil {
		return cannedEnhancement
	}

	prompt := fmt.Sprintf(`You are an expert game producer. Your task is to enhance a task description to make it clearer and more comprehensive for a game development team.
Given the task title and a brief description, expand on it by adding potential sub-tasks, acceptance criteria, or key considerations.
Do not repeat the original title or description. Provide only the enhanced text.
Keep it concise and formatted with markdown (e.g., using bullet points).

Task Title: %s
Original Description: %s`, title, description)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.5,
		},
	)
	if err != nil {
		log.Printf("Error enhancing description: %v", err)
		return enhanceFailureNotice
	}
	if len(resp.Choices) == 0 {
		return enhanceFailureNotice
	}
	return resp.Choices[0].Message.Content
}

// stripCodeFence removes a surrounding markdown code fence, which chat
// models add around JSON despite instructions not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimSuffix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	return strings.TrimSpace(s)
}
