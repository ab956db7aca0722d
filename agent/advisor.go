package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const advisorInstruction = `You are a careful personal finance assistant.
You are given the user's current assets and the reconstructed history of
their net worth as markdown reports. Answer questions using only that data.
Amounts are in euros. When the data cannot answer a question, say so
instead of guessing. Never give regulated investment advice.`

// Advisor is a chat seeded with the user's reports as context.
type Advisor struct {
	ModelName string
	chat      *genai.Chat
	reports   []string
}

// NewAdvisor creates an advisor grounded on the given markdown reports.
func NewAdvisor(reports ...string) *Advisor {
	return &Advisor{
		ModelName: defaultModel,
		reports:   reports,
	}
}

// Start creates the underlying chat session.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	instruction := advisorInstruction
	for _, report := range a.reports {
		instruction += "\n\n---\n\n" + report
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
	}
	chat, err := client.Chats.Create(ctx, a.ModelName, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends a question and returns the advisor's text answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
