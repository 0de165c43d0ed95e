package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/KNICEX/analyst-agent/internal/service/llm"
	"github.com/google/generative-ai-go/genai"
)

const DefaultModel = "gemini-2.0-flash"

var ErrEmptyResponse = errors.New("gemini returned no candidates")

type Service struct {
	client *genai.Client
	model  *genai.GenerativeModel

	modelName   string
	temperature *float32
	system      string
}

func NewService(client *genai.Client, opts ...Option) llm.Service {
	svc := &Service{
		client:    client,
		modelName: DefaultModel,
	}
	for _, opt := range opts {
		opt(svc)
	}

	svc.model = client.GenerativeModel(svc.modelName)
	if svc.temperature != nil {
		svc.model.SetTemperature(*svc.temperature)
	}
	if svc.system != "" {
		svc.model.SystemInstruction = genai.NewUserContent(genai.Text(svc.system))
	}
	return svc
}

type Option func(service *Service)

func WithTemperature(temp float32) Option {
	return func(service *Service) {
		service.temperature = &temp
	}
}

func WithModel(name string) Option {
	return func(service *Service) {
		if name != "" {
			service.modelName = name
		}
	}
}

// WithSystemInstruction 设置系统提示词, 每次调用都会携带
func WithSystemInstruction(instruction string) Option {
	return func(service *Service) {
		service.system = instruction
	}
}

func (s *Service) AskOnce(ctx context.Context, q llm.Question) (llm.Answer, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(q.Content))
	if err != nil {
		return llm.Answer{}, err
	}
	return parseResponse(resp)
}

func parseResponse(resp *genai.GenerateContentResponse) (llm.Answer, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return llm.Answer{}, ErrEmptyResponse
	}

	var resStr strings.Builder
	for i, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		text, ok := part.(genai.Text)
		if !ok {
			// 非文本内容直接忽略
			continue
		}
		if i > 0 {
			resStr.WriteString("\n")
		}
		resStr.WriteString(string(text))
	}

	answer := llm.Answer{
		Content: strings.TrimSpace(resStr.String()),
	}
	if resp.UsageMetadata != nil {
		answer.InputToken = int(resp.UsageMetadata.PromptTokenCount)
		answer.OutputToken = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	return answer, nil
}
