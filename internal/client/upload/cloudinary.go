// Package upload pushes product images to Cloudinary's unsigned upload API.
// The response's secure_url becomes the product's picture URL.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

type Uploader struct {
	baseURL   string
	cloudName string
	preset    string
	http      *http.Client
}

func New(cloudName, preset string) *Uploader {
	return &Uploader{
		baseURL:   defaultBaseURL,
		cloudName: cloudName,
		preset:    preset,
		http:      &http.Client{Timeout: 60 * time.Second},
	}
}

// NewWithBaseURL is used by tests to point the uploader at a stub server.
func NewWithBaseURL(baseURL, cloudName, preset string) *Uploader {
	u := New(cloudName, preset)
	u.baseURL = baseURL
	return u
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload sends the file at path as multipart form data and returns the
// hosted image URL.
func (u *Uploader) Upload(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := w.WriteField("upload_preset", u.preset); err != nil {
		return "", err
	}
	if err := w.WriteField("cloud_name", u.cloudName); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", u.baseURL, u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := u.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if out.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}
	return out.SecureURL, nil
}
