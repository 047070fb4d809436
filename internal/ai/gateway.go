package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"f1insights/internal/models"
)

// Fixed fallbacks: analysis output is display-only and best-effort, so
// a failed call degrades to a placeholder instead of propagating.
const (
	summaryFallback    = "Could not generate summary."
	entitiesFallback   = "Could not extract entities."
	sentimentFallback  = "Could not classify sentiment."
	comparisonFallback = "Could not generate driver comparison."
)

// Gateway sends article text and driver data to the generative model
// and returns its prose verbatim. No structural parsing of responses
// is attempted beyond line-splitting for entity lists; the output is
// meant for direct display.
type Gateway struct {
	client openai.Client
	model  string
}

// NewGateway builds a gateway for the given credential and model.
// Extra request options are accepted so tests can point the client at
// a stub server.
func NewGateway(apiKey, model string, opts ...option.RequestOption) *Gateway {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Gateway{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Summarize returns a short summary of the article text.
func (g *Gateway) Summarize(ctx context.Context, text string) string {
	prompt := fmt.Sprintf(
		"Summarize the following Formula 1 news article in 2-3 sentences:\n\n%s", text)

	out, err := g.generate(ctx, prompt)
	if err != nil {
		slog.WarnContext(ctx, "summary generation failed", "err", err)
		return summaryFallback
	}
	return out
}

// ExtractEntities returns the drivers, teams and circuits the model
// finds in the text, one per response line, in model output order,
// neither deduplicated nor sorted.
func (g *Gateway) ExtractEntities(ctx context.Context, text string) []string {
	prompt := fmt.Sprintf(
		"List the Formula 1 drivers, teams and circuits mentioned in the following news article. "+
			"Respond with one entity per line and nothing else:\n\n%s", text)

	out, err := g.generate(ctx, prompt)
	if err != nil {
		slog.WarnContext(ctx, "entity extraction failed", "err", err)
		out = entitiesFallback
	}
	return splitLines(out)
}

// ClassifySentiment returns the model's sentiment assessment as prose.
// The contract does not guarantee a machine-parseable label.
func (g *Gateway) ClassifySentiment(ctx context.Context, text string) string {
	prompt := fmt.Sprintf(
		"Classify the overall sentiment of the following Formula 1 news article as positive, "+
			"negative or neutral, and briefly explain why:\n\n%s", text)

	out, err := g.generate(ctx, prompt)
	if err != nil {
		slog.WarnContext(ctx, "sentiment classification failed", "err", err)
		return sentimentFallback
	}
	return out
}

// Analyze runs all three tasks on the article text. Each task degrades
// independently: a failed sentiment call never blocks the summary or
// the entity list.
func (g *Gateway) Analyze(ctx context.Context, text string) models.Analysis {
	return models.Analysis{
		Summary:   g.Summarize(ctx, text),
		Entities:  g.ExtractEntities(ctx, text),
		Sentiment: g.ClassifySentiment(ctx, text),
	}
}

// CompareDrivers asks the model for a comparative analysis of two
// drivers given their formatted recent-results blocks.
func (g *Gateway) CompareDrivers(ctx context.Context, driver1Data, driver2Data string) string {
	prompt := fmt.Sprintf(
		"Analyze and compare the recent performance of the following two Formula 1 drivers "+
			"based on the provided data. Focus on identifying strengths and weaknesses, "+
			"consistency, and significant results for both. Provide a conclusion on who "+
			"demonstrated superior or more consistent performance.\n\n"+
			"Driver 1 Data:\n%s\n\n"+
			"Driver 2 Data:\n%s\n\n"+
			"Present your analysis concisely, impartially, and in clear bullet points or "+
			"paragraphs. Avoid generic introductions and conclusions.",
		driver1Data, driver2Data)

	out, err := g.generate(ctx, prompt)
	if err != nil {
		slog.WarnContext(ctx, "driver comparison failed", "err", err)
		return comparisonFallback
	}
	return out
}

func (g *Gateway) generate(ctx context.Context, prompt string) (string, error) {
	response, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(prompt),
					},
				},
			},
		},
		Temperature: openai.Float(0.3),
		MaxTokens:   openai.Int(1000),
	})
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}
	return response.Choices[0].Message.Content, nil
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
