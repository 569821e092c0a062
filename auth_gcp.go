package main

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiConf selects the Vertex AI project and model used to read answers.
type GeminiConf struct {
	ProjectID string
	// Region defaults to europe-west1, Model to gemini-2.5-flash.
	Region string
	Model  string
}

func (c GeminiConf) withDefaults() GeminiConf {
	if c.Region == "" {
		c.Region = "europe-west1"
	}
	if c.Model == "" {
		c.Model = "gemini-2.5-flash"
	}
	return c
}

// GeminiClient reads worksheet photos with a Gemini model on Vertex AI.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient authenticates with Application Default Credentials
// (GOOGLE_APPLICATION_CREDENTIALS or the metadata server).
func NewGeminiClient(ctx context.Context, conf GeminiConf) (*GeminiClient, error) {
	if conf.ProjectID == "" {
		return nil, fmt.Errorf("%w: missing GCP project", ErrInvalidConfiguration)
	}
	conf = conf.withDefaults()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  conf.ProjectID,
		Location: conf.Region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client (%s, %s): %w", conf.ProjectID, conf.Region, err)
	}
	return &GeminiClient{client: client, modelName: conf.Model}, nil
}

// Close is a no-op; genai clients hold no resources to release.
func (g *GeminiClient) Close() error {
	return nil
}
