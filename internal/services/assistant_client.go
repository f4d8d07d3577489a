package services

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/UCAS-CE/cyberhub-service/internal/config"
)

// askCyberSystemInstruction frames the assistant as the hub's
// resident guide.
const askCyberSystemInstruction = `You are "Ask Cyber", the assistant of the UCAS campus cyber hub. ` +
	`You help students, experts and faculty with technical questions about networking, security, ` +
	`software and hardware. Answer concisely and practically. When you are unsure, say so. ` +
	`Answer in the language of the question.`

const learningPathInstruction = `You design learning paths for cyber-security students. ` +
	`Given a goal, produce a titled path with a short description and an ordered list of steps. ` +
	`Each step has a label, a one-sentence description, and a type tag (course, practice, reading or project).`

// generativeClient is the boundary to the generative-language API;
// tests substitute a stub.
type generativeClient interface {
	GenerateText(ctx context.Context, turns []ChatTurn, message string, useSearch bool) (string, []SourceRef, error)
	GenerateLearningPath(ctx context.Context, goal string) (*LearningPath, error)
}

type geminiClient struct {
	client *genai.Client
	cfg    config.GeminiConfig
}

var _ generativeClient = (*geminiClient)(nil)

func newGeminiClient(ctx context.Context, cfg config.GeminiConfig) (generativeClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("generative-language API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &geminiClient{client: client, cfg: cfg}, nil
}

func (g *geminiClient) GenerateText(ctx context.Context, turns []ChatTurn, message string, useSearch bool) (string, []SourceRef, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	contents := make([]*genai.Content, 0, len(turns)+1)
	for _, t := range turns {
		role := genai.Role(genai.RoleUser)
		if t.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(g.cfg.Temperature),
		SystemInstruction: genai.NewContentFromText(askCyberSystemInstruction, genai.RoleUser),
	}
	if useSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, contents, cfg)
	if err != nil {
		return "", nil, err
	}

	text := resp.Text()
	if text == "" {
		return "", nil, fmt.Errorf("empty response")
	}

	var sources []SourceRef
	if useSearch && len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web != nil {
				sources = append(sources, SourceRef{
					Title: chunk.Web.Title,
					URI:   chunk.Web.URI,
				})
			}
		}
	}

	return text, sources, nil
}

func (g *geminiClient) GenerateLearningPath(ctx context.Context, goal string) (*LearningPath, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	stepSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"label":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"type":        {Type: genai.TypeString},
		},
		Required: []string{"label", "description", "type"},
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(g.cfg.Temperature),
		SystemInstruction: genai.NewContentFromText(learningPathInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":       {Type: genai.TypeString},
				"description": {Type: genai.TypeString},
				"steps":       {Type: genai.TypeArray, Items: stepSchema},
			},
			Required: []string{"title", "description", "steps"},
		},
	}

	contents := []*genai.Content{genai.NewContentFromText(goal, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, contents, cfg)
	if err != nil {
		return nil, err
	}

	var path LearningPath
	if err := json.Unmarshal([]byte(resp.Text()), &path); err != nil {
		return nil, fmt.Errorf("malformed learning path response: %w", err)
	}

	return &path, nil
}
