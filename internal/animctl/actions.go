package animctl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

func fnGet(cfg *Config, path string) error {
	req, err := http.NewRequest(http.MethodGet, cfg.Addr+path, nil)
	if err != nil {
		return err
	}
	return do(req)
}

func fnPost(cfg *Config, path, body string) error {
	return send(cfg, http.MethodPost, path, body)
}

func fnPut(cfg *Config, path, body string) error {
	return send(cfg, http.MethodPut, path, body)
}

func send(cfg *Config, method, path, body string) error {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, cfg.Addr+path, rd)
	if err != nil {
		return err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return do(req)
}

func do(req *http.Request) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	out := strings.TrimSpace(string(prettyJSON(b)))
	if out != "" {
		fmt.Println(out)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s: %s", req.Method, req.URL.Path, resp.Status)
	}
	return nil
}

// prettyJSON indents JSON payloads and passes everything else through.
func prettyJSON(b []byte) []byte {
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return b
	}
	return buf.Bytes()
}
