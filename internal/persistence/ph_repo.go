package persistence

import (
	"context"
	"fmt"
)

type PHRepo struct {
	BaseHeaders []string
	BaseUrl     string
	ApiKey      string
}

func (r PHRepo) Capture(ctx context.Context, eventType string, distinctId string) error {
	url := fmt.Sprintf("%s/capture/", r.BaseUrl)
	body := []byte(fmt.Sprintf(`{
		"api_key": "%s",
		"event": "%s",
		"properties": {
			"distinct_id": "%s"}}`, r.ApiKey, eventType, distinctId))

	_, err := request[struct{}](ctx, reqConfig{Method: "POST", Url: url, Headers: r.BaseHeaders, Body: body}, 200)

	if err != nil {
		return err
	}

	return nil
}
