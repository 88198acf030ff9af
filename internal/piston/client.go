// Package piston talks to the Piston code-execution API. Source and stdin go
// out, stdout/stderr/exit code come back; no sandboxing happens locally.
package piston

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mradulpatle03/IDE/pkg/model"
)

type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: timeout},
	}
}

type executeRequest struct {
	Language string        `json:"language"`
	Version  string        `json:"version"`
	Files    []executeFile `json:"files"`
	Stdin    string        `json:"stdin,omitempty"`
}

type executeFile struct {
	Content string `json:"content"`
}

type executeResponse struct {
	Run struct {
		Stdout string `json:"stdout"`
		Stderr string `json:"stderr"`
		Output string `json:"output"`
		Code   int    `json:"code"`
	} `json:"run"`
	Message string `json:"message,omitempty"`
}

// Execute runs code remotely and returns the run result.
func (c *Client) Execute(ctx context.Context, req model.RunCodeReq) (*model.RunCodeRes, error) {
	body, _ := json.Marshal(executeRequest{
		Language: req.Language,
		Version:  req.Version,
		Files:    []executeFile{{Content: req.Code}},
		Stdin:    req.Stdin,
	})

	r, err := http.NewRequestWithContext(ctx, "POST", c.base+"/execute", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	r.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("piston api error: %s", string(bodyBytes))
	}

	var er executeResponse
	if err := json.Unmarshal(bodyBytes, &er); err != nil {
		return nil, fmt.Errorf("decode error: %w, body: %s", err, string(bodyBytes))
	}
	if er.Message != "" {
		return nil, fmt.Errorf("piston api error: %s", er.Message)
	}

	return &model.RunCodeRes{
		Stdout:   er.Run.Stdout,
		Stderr:   er.Run.Stderr,
		Output:   er.Run.Output,
		ExitCode: er.Run.Code,
	}, nil
}

// Runtimes lists the languages and versions the execution service supports.
func (c *Client) Runtimes(ctx context.Context) ([]model.Runtime, error) {
	r, err := http.NewRequestWithContext(ctx, "GET", c.base+"/runtimes", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(r)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("piston api error: %s", string(bodyBytes))
	}

	var runtimes []model.Runtime
	if err := json.NewDecoder(resp.Body).Decode(&runtimes); err != nil {
		return nil, fmt.Errorf("decode runtimes: %w", err)
	}
	return runtimes, nil
}
