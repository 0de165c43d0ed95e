package analyst

import (
	"context"
	"time"

	"github.com/KNICEX/analyst-agent/internal/entity"
	"github.com/KNICEX/analyst-agent/internal/service/extract"
	"github.com/KNICEX/analyst-agent/internal/service/llm"
	"github.com/stretchr/testify/mock"
)

// ============ Mock 定义 ============

type MockLLMService struct {
	mock.Mock
}

func (m *MockLLMService) AskOnce(ctx context.Context, q llm.Question) (llm.Answer, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(llm.Answer), args.Error(1)
}

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) ExtractFile(ctx context.Context, file extract.File) string {
	args := m.Called(ctx, file)
	return args.String(0)
}

func (m *MockExtractor) FetchLink(ctx context.Context, link string) string {
	args := m.Called(ctx, link)
	return args.String(0)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

type MockQueryRepo struct {
	mock.Mock
}

func (m *MockQueryRepo) Create(ctx context.Context, query entity.Query) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueryRepo) FindRecent(ctx context.Context, limit int) ([]entity.Query, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]entity.Query), args.Error(1)
}

func (m *MockQueryRepo) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}
