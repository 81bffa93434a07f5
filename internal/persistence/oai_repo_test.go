package persistence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaworks/atelier/internal/domain"
)

func newProviderStub(t *testing.T, status int, body string, captured *imageGenerationReq) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOAIRepo_Generate_Success(t *testing.T) {
	var captured imageGenerationReq
	server := newProviderStub(t, 200,
		`{"created": 1700000000, "data": [{"url": "https://img/1.png", "revised_prompt": "a camel coat on a mannequin"}]}`,
		&captured)

	repo := OAIRepo{
		BaseUrl:     server.URL,
		BaseHeaders: []string{"Content-Type:application/json", "Authorization:Bearer test-key"},
	}

	designs, err := repo.Generate(context.Background(), "a camel coat")

	require.NoError(t, err)
	require.Len(t, designs, 1)
	assert.Equal(t, domain.GeneratedDesign{Url: "https://img/1.png", RevisedPrompt: "a camel coat on a mannequin"}, designs[0])

	assert.Equal(t, "dall-e-3", captured.Model)
	assert.Equal(t, "a camel coat", captured.Prompt)
	assert.Equal(t, 1, captured.N)
	assert.Equal(t, "1024x1024", captured.Size)
	assert.Equal(t, "hd", captured.Quality)
	assert.Equal(t, "natural", captured.Style)
}

func TestOAIRepo_Generate_SendsAuthHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"created": 1, "data": []}`))
	}))
	t.Cleanup(server.Close)

	repo := OAIRepo{BaseUrl: server.URL, BaseHeaders: []string{"Authorization:Bearer test-key"}}
	_, err := repo.Generate(context.Background(), "a camel coat")

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestOAIRepo_Generate_RateLimitEnvelope(t *testing.T) {
	server := newProviderStub(t, 429,
		`{"error": {"message": "Rate limit exceeded for images per minute.", "type": "requests", "code": "rate_limit_exceeded"}}`,
		nil)

	repo := OAIRepo{BaseUrl: server.URL}
	_, err := repo.Generate(context.Background(), "a camel coat")

	var providerErr *domain.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.True(t, providerErr.RateLimited())
	assert.False(t, providerErr.ContentPolicyViolation())
	assert.Equal(t, 429, providerErr.StatusCode)
}

func TestOAIRepo_Generate_ContentPolicyEnvelope(t *testing.T) {
	server := newProviderStub(t, 400,
		`{"error": {"message": "Your request was rejected as a result of our safety system.", "type": "image_generation_user_error", "code": "content_policy_violation"}}`,
		nil)

	repo := OAIRepo{BaseUrl: server.URL}
	_, err := repo.Generate(context.Background(), "a camel coat")

	var providerErr *domain.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.True(t, providerErr.ContentPolicyViolation())
	assert.False(t, providerErr.RateLimited())
}

func TestOAIRepo_Generate_UndecodableErrorBody(t *testing.T) {
	server := newProviderStub(t, 502, `upstream exploded`, nil)

	repo := OAIRepo{BaseUrl: server.URL}
	_, err := repo.Generate(context.Background(), "a camel coat")

	var providerErr *domain.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, 502, providerErr.StatusCode)
	assert.Contains(t, providerErr.Message, "upstream exploded")
	assert.False(t, providerErr.RateLimited())
	assert.False(t, providerErr.ContentPolicyViolation())
}

func TestOAIRepo_Generate_EmptyData(t *testing.T) {
	server := newProviderStub(t, 200, `{"created": 1700000000, "data": []}`, nil)

	repo := OAIRepo{BaseUrl: server.URL}
	designs, err := repo.Generate(context.Background(), "a camel coat")

	require.NoError(t, err)
	assert.Empty(t, designs)
}
