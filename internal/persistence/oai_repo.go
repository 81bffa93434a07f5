package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modaworks/atelier/internal/domain"
)

type OAIRepo struct {
	BaseHeaders []string
	BaseUrl     string
}

type imageGenerationReq struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
	Style   string `json:"style"`
}

type imageData struct {
	Url           string `json:"url"`
	RevisedPrompt string `json:"revised_prompt"`
}

type imageListing struct {
	Created int64       `json:"created"`
	Data    []imageData `json:"data"`
}

// errEnvelope matches the provider's documented error wire format.
type errEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Generate requests a single dall-e-3 rendering of prompt at the fixed
// resolution, highest quality tier and natural style.
func (r OAIRepo) Generate(ctx context.Context, prompt string) ([]domain.GeneratedDesign, error) {
	body, err := json.Marshal(imageGenerationReq{
		Model:   "dall-e-3",
		Prompt:  prompt,
		N:       1,
		Size:    "1024x1024",
		Quality: "hd",
		Style:   "natural",
	})

	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/images/generations", r.BaseUrl)

	listing, err := request[imageListing](ctx, reqConfig{Method: "POST", Url: url, Headers: r.BaseHeaders, Body: body}, 200)

	if err != nil {
		var httpErr *httpError
		if errors.As(err, &httpErr) {
			return nil, asProviderError(httpErr)
		}
		return nil, err
	}

	designs := make([]domain.GeneratedDesign, len(listing.Data))
	for i := 0; i < len(listing.Data); i++ {
		designs[i] = domain.GeneratedDesign{
			Url:           listing.Data[i].Url,
			RevisedPrompt: listing.Data[i].RevisedPrompt,
		}
	}

	return designs, nil
}

func asProviderError(httpErr *httpError) *domain.ProviderError {
	perr := &domain.ProviderError{StatusCode: httpErr.StatusCode}

	var envelope errEnvelope
	if err := json.Unmarshal(httpErr.Body, &envelope); err == nil && envelope.Error.Message != "" {
		perr.Type = envelope.Error.Type
		perr.Code = envelope.Error.Code
		perr.Message = envelope.Error.Message
		return perr
	}

	// Undecodable error body. Keep the raw text for the logs.
	perr.Message = string(httpErr.Body)
	return perr
}
