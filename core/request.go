package core

import (
	"context"
	"fmt"
	"net/http"
)

// UserAgent is sent with every request made to Mojang's servers
const UserAgent = "respack/respack"

// GetWithUA makes a GET request with the respack user agent, failing on any non-200 response.
// The caller must close the response body.
func GetWithUA(ctx context.Context, client *http.Client, url string, contentType string) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", UserAgent)
	if len(contentType) > 0 {
		req.Header.Set("Accept", contentType)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("invalid response status for %s: %v", url, resp.Status)
	}
	return resp, nil
}
