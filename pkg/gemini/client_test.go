package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lockfocus-assistant/pkg/gemini"
)

func TestBuildSupportPrompt(t *testing.T) {
	prompt := gemini.BuildSupportPrompt("I can't focus", "Ground the user")
	assert.True(t, strings.HasPrefix(prompt, "Context/Goal: Ground the user"))
	assert.Contains(t, prompt, "User: I can't focus")

	plain := gemini.BuildSupportPrompt("hello", "")
	assert.True(t, strings.HasPrefix(plain, "User: hello"))
}

func TestBuildSystemInstruction(t *testing.T) {
	assert.Equal(t, gemini.SupportSystemPrompt, gemini.BuildSystemInstruction(""))

	got := gemini.BuildSystemInstruction("Suggest a break.")
	assert.True(t, strings.HasPrefix(got, gemini.SupportSystemPrompt))
	assert.True(t, strings.HasSuffix(got, "Current strategy override:\nSuggest a break."))
}

func TestClient_Available(t *testing.T) {
	assert.False(t, gemini.New(gemini.Config{}).Available())
	assert.False(t, gemini.New(gemini.Config{APIKey: "   "}).Available())
	assert.False(t, gemini.New(gemini.Config{APIKey: "YOUR_GEMINI_API_KEY_HERE"}).Available())
	assert.True(t, gemini.New(gemini.Config{APIKey: "k"}).Available())
}

func TestClient_Defaults(t *testing.T) {
	c := gemini.New(gemini.Config{APIKey: "k"})
	assert.Equal(t, gemini.DefaultModel, c.Model())

	c = gemini.New(gemini.Config{APIKey: "k", Model: "gemini-pro"})
	assert.Equal(t, "gemini-pro", c.Model())
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("x-goog-api-key") != "test-api-key" || r.URL.RawQuery != "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-2.5-flash:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.Contents[0].Parts[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [{ "text": "mocked " }, { "text": "response" }],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.New(gemini.Config{APIKey: "test-api-key"})
	client.SetAPIURL(ts.URL + "/")

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: gemini.SupportSystemPrompt}}},
			Contents:          []gemini.Content{gemini.NewTextContent(gemini.RoleUser, "Hello world")},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "mocked response", resp.Text())
	})

	t.Run("Server Error", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{gemini.NewTextContent(gemini.RoleUser, "cause_500")},
		}

		_, err := client.GenerateContent(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("Not Configured", func(t *testing.T) {
		unconfigured := gemini.New(gemini.Config{})
		unconfigured.SetAPIURL(ts.URL)

		_, err := unconfigured.GenerateContent(context.Background(), gemini.GenerateRequest{})
		assert.ErrorIs(t, err, gemini.ErrNotConfigured)
	})
}

func TestClient_TransportErrorOmitsKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	apiURL := ts.URL
	ts.Close()

	client := gemini.New(gemini.Config{APIKey: "secret-api-key"})
	client.SetAPIURL(apiURL)

	_, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
		Contents: []gemini.Content{gemini.NewTextContent(gemini.RoleUser, "hi")},
	})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-api-key")
}

func TestGenerateResponse_TextEmpty(t *testing.T) {
	var nilResp *gemini.GenerateResponse
	assert.Equal(t, "", nilResp.Text())
	assert.Equal(t, "", (&gemini.GenerateResponse{}).Text())
}
