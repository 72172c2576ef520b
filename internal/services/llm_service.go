package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// maxExtractionInput caps the HTML sent to the model.
const maxExtractionInput = 20000

type LLMService struct {
	Client llms.Model
}

func NewLLMService(ctx context.Context, apiKey, model string) (*LLMService, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &LLMService{Client: llm}, nil
}

const jobExtractionPrompt = `
You are an expert Job Data Extraction Agent. Your task is to analyze the provided raw HTML/Text from a job posting and extract structured data for a job board.

### INSTRUCTIONS:
1. **Analyze** the text to identify the core job details.
2. **Ignore** navigation menus, footers, "similar jobs" lists, and site advertisements.
3. **Extract** the following fields strictly.
4. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "jobTitle": "Job title (e.g., Senior Backend Engineer)",
    "companyName": "Name of the company (e.g., Google, StartupInc)",
    "jobType": "One of FULL_TIME, PART_TIME, CONTRACT, INTERNSHIP",
    "jobLocation": "Job location or 'Remote'",
    "jobDescription": "A clean summary of the job. Focus on Responsibilities and Requirements. Remove HTML tags.",
    "deadLineDate": "Application deadline as YYYY-MM-DD if explicitly mentioned, otherwise null"
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RAW CONTENT:
%s
`

// ExtractJobDetails asks the model for a job post draft and returns its JSON.
func (s *LLMService) ExtractJobDetails(ctx context.Context, rawHTML string) (string, error) {
	rawHTML = truncateUTF8(rawHTML, maxExtractionInput)

	prompt := fmt.Sprintf(jobExtractionPrompt, rawHTML)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	out := stripCodeFence(resp)
	if !json.Valid([]byte(out)) {
		return "", fmt.Errorf("model returned non-JSON output")
	}
	return out, nil
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// stripCodeFence removes a ```json ... ``` wrapper the model sometimes adds
// despite the prompt.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
