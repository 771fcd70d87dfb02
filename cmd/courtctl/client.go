package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// envelope mirrors the API response body
type envelope struct {
	StatusCode int             `json:"status_code"`
	Status     string          `json:"status"`
	Code       string          `json:"code,omitempty"`
	Error      string          `json:"error,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// post calls an API endpoint and unwraps the envelope
func post(path string, body any) (json.RawMessage, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := strings.TrimRight(flagAPI, "/") + path
	client := &http.Client{Timeout: 5 * time.Minute}
	resp, err := client.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", url, err)
	}
	return unwrap(url, resp)
}

// get calls a read endpoint and unwraps the envelope
func get(path string) (json.RawMessage, error) {
	url := strings.TrimRight(flagAPI, "/") + path
	client := &http.Client{Timeout: time.Minute}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", url, err)
	}
	return unwrap(url, resp)
}

func unwrap(url string, resp *http.Response) (json.RawMessage, error) {
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("decode %s: %w (body %q)", url, err, truncate(string(payload), 200))
	}
	if resp.StatusCode >= 400 || env.Error != "" {
		return nil, fmt.Errorf("%s: %s (%s)", url, env.Error, env.Code)
	}
	return env.Data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// printJSON renders data with stable indentation
func printJSON(data json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	fmt.Println(buf.String())
	return nil
}
