// Package imagekit uploads files to the ImageKit CDN and hands back the
// hosted URL. Only the upload endpoint is used.
package imagekit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const uploadURL = "https://upload.imagekit.io/api/v1/files/upload"

type Client struct {
	privateKey string
	upload     string
	http       *http.Client
}

func NewClient(privateKey string) *Client {
	return &Client{
		privateKey: privateKey,
		upload:     uploadURL,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
}

// WithUploadURL overrides the upload endpoint, used by tests.
func (c *Client) WithUploadURL(u string) *Client {
	c.upload = u
	return c
}

type uploadResponse struct {
	URL     string `json:"url"`
	FileID  string `json:"fileId"`
	Message string `json:"message,omitempty"`
}

// Upload sends a file buffer and returns the CDN URL it is served from.
func (c *Client) Upload(ctx context.Context, fileName string, data []byte) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	fw, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(data); err != nil {
		return "", err
	}
	if err := w.WriteField("fileName", fileName); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	r, err := http.NewRequestWithContext(ctx, "POST", c.upload, &body)
	if err != nil {
		return "", err
	}
	r.Header.Set("Content-Type", w.FormDataContentType())
	// ImageKit authenticates uploads with the private key as basic auth user
	r.SetBasicAuth(c.privateKey, "")

	resp, err := c.http.Do(r)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("imagekit api error: %s", string(bodyBytes))
	}

	var ur uploadResponse
	if err := json.Unmarshal(bodyBytes, &ur); err != nil {
		return "", fmt.Errorf("decode error: %w, body: %s", err, string(bodyBytes))
	}
	if ur.URL == "" {
		return "", fmt.Errorf("imagekit upload returned no url")
	}
	return ur.URL, nil
}
