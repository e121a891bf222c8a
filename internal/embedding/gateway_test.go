package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/lexihq/lexi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

func TestEmbed_NormalizesResult(t *testing.T) {
	mockClient := new(MockClient)
	mockClient.On("CreateEmbedding", mock.Anything, "hello").Return([]float32{3, 4}, nil)

	gateway := NewGateway(mockClient)

	vec, err := gateway.Embed(context.Background(), "hello")

	require.NoError(t, err)
	assert.InDelta(t, 1.0, norm(vec), 1e-6)
	mockClient.AssertExpectations(t)
}

func TestEmbed_CachesByText(t *testing.T) {
	mockClient := new(MockClient)
	mockClient.On("CreateEmbedding", mock.Anything, "hello").Return([]float32{1, 0}, nil).Once()

	gateway := NewGateway(mockClient)

	first, err := gateway.Embed(context.Background(), "hello")
	require.NoError(t, err)

	second, err := gateway.Embed(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	mockClient.AssertNumberOfCalls(t, "CreateEmbedding", 1)
}

func TestEmbed_WrapsProviderError(t *testing.T) {
	mockClient := new(MockClient)
	mockClient.On("CreateEmbedding", mock.Anything, "bad").Return(nil, errors.New("connection refused"))

	gateway := NewGateway(mockClient)

	_, err := gateway.Embed(context.Background(), "bad")

	require.Error(t, err)
	assert.True(t, domain.IsEmbeddingError(err))
}

func TestEmbed_FailureNotCached(t *testing.T) {
	mockClient := new(MockClient)
	mockClient.On("CreateEmbedding", mock.Anything, "flaky").Return(nil, errors.New("timeout")).Once()
	mockClient.On("CreateEmbedding", mock.Anything, "flaky").Return([]float32{1, 0}, nil).Once()

	gateway := NewGateway(mockClient)

	_, err := gateway.Embed(context.Background(), "flaky")
	require.Error(t, err)

	vec, err := gateway.Embed(context.Background(), "flaky")
	require.NoError(t, err)
	assert.NotNil(t, vec)
	mockClient.AssertNumberOfCalls(t, "CreateEmbedding", 2)
}

func TestBatchEmbed_OmitsFailures(t *testing.T) {
	mockClient := new(MockClient)
	mockClient.On("CreateEmbedding", mock.Anything, "good").Return([]float32{1, 0}, nil)
	mockClient.On("CreateEmbedding", mock.Anything, "bad").Return(nil, errors.New("boom"))

	gateway := NewGateway(mockClient)

	embeddings := gateway.BatchEmbed(context.Background(), []string{"good", "bad"})

	require.Len(t, embeddings, 1)
	assert.Contains(t, embeddings, "good")
}

func TestNewGatewayWithCacheSize_EvictsOldEntries(t *testing.T) {
	mockClient := new(MockClient)
	mockClient.On("CreateEmbedding", mock.Anything, mock.Anything).Return([]float32{1, 0}, nil)

	gateway := NewGatewayWithCacheSize(mockClient, 1)

	_, err := gateway.Embed(context.Background(), "first")
	require.NoError(t, err)
	_, err = gateway.Embed(context.Background(), "second")
	require.NoError(t, err)
	_, err = gateway.Embed(context.Background(), "first")
	require.NoError(t, err)

	// "first" was evicted by "second", so it is embedded twice.
	mockClient.AssertNumberOfCalls(t, "CreateEmbedding", 3)
}
