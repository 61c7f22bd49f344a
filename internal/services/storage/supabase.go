package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/socialchef/moodchef/internal/httpclient"
)

// SupabaseSink uploads images through the Supabase storage REST API.
type SupabaseSink struct {
	supabaseURL string
	serviceKey  string
	bucket      string
	httpClient  *http.Client
}

func NewSupabaseSink(supabaseURL, serviceKey, bucket string, httpClient *http.Client) *SupabaseSink {
	return &SupabaseSink{
		supabaseURL: strings.TrimRight(supabaseURL, "/"),
		serviceKey:  serviceKey,
		bucket:      bucket,
		httpClient:  httpClient,
	}
}

func (c *SupabaseSink) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.supabaseURL, c.bucket, name)

	req, err := http.NewRequestWithContext(httpclient.WithProvider(ctx, "supabase"), http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: %s", ErrUploadFailed, string(body))
	}

	return c.PublicURL(name), nil
}

func (c *SupabaseSink) PublicURL(name string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.supabaseURL, c.bucket, name)
}
