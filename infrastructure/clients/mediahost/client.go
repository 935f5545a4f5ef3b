// Package mediahost talks to the external provider that stores binary media
// (video files, thumbnails, avatars). The provider keeps the bytes; this
// service only persists the returned URLs.
package mediahost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
)

// Config holds the media host credentials and target folder.
type Config struct {
	BaseURL   string `json:"base_url"`
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
	Folder    string `json:"folder"`
}

type Client struct {
	httpClient *http.Client
	config     *Config
}

// uploadResponse is the provider's answer to a stored asset.
type uploadResponse struct {
	PublicID string  `json:"public_id"`
	URL      string  `json:"url"`
	Secure   string  `json:"secure_url"`
	Duration float64 `json:"duration"`
}

type destroyParams struct {
	PublicID string `url:"public_id"`
	APIKey   string `url:"api_key"`
}

type destroyResponse struct {
	Result string `json:"result"`
}

func NewClient(config *Config) (repository.IMediaStorage, error) {
	if config == nil || config.BaseURL == "" {
		return nil, fmt.Errorf("media host base URL is not configured")
	}
	return &Client{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		config:     config,
	}, nil
}

// Upload streams the local file to the host and returns the stored asset.
// Returns nil on any failure; callers treat nil as "no usable reference".
func (c *Client) Upload(ctx context.Context, localPath string) (*model.UploadedAsset, error) {
	if localPath == "" {
		return nil, fmt.Errorf("no file to upload")
	}
	file, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer file.Close()

	publicID := c.config.Folder + "/" + uuid.NewString()

	// the multipart body is piped into the request so a large video file is
	// never buffered in memory
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeUploadBody(writer, publicID, c.config.APIKey, localPath, file))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/upload", pr)
	if err != nil {
		pr.Close()
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.SetBasicAuth(c.config.APIKey, c.config.APISecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("media host upload failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("media host upload returned status %d", resp.StatusCode)
	}

	var uploaded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return nil, err
	}
	assetURL := uploaded.Secure
	if assetURL == "" {
		assetURL = uploaded.URL
	}
	if assetURL == "" {
		return nil, fmt.Errorf("media host returned no asset url")
	}
	return &model.UploadedAsset{
		PublicID: uploaded.PublicID,
		URL:      assetURL,
		Duration: uploaded.Duration,
	}, nil
}

// writeUploadBody emits the multipart form onto the pipe feeding the request.
func writeUploadBody(writer *multipart.Writer, publicID, apiKey, localPath string, file io.Reader) error {
	if err := writer.WriteField("public_id", publicID); err != nil {
		return err
	}
	if err := writer.WriteField("api_key", apiKey); err != nil {
		return err
	}
	part, err := writer.CreateFormFile("file", path.Base(localPath))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read %s: %w", localPath, err)
	}
	return writer.Close()
}

// Delete removes a previously uploaded asset by its URL.
func (c *Client) Delete(ctx context.Context, assetURL string) error {
	publicID, err := extractPublicID(assetURL)
	if err != nil {
		return err
	}

	values, err := query.Values(destroyParams{PublicID: publicID, APIKey: c.config.APIKey})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/destroy?"+values.Encode(), nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.config.APIKey, c.config.APISecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("media host delete failed")
		return err
	}
	defer resp.Body.Close()

	var destroyed destroyResponse
	if err := json.NewDecoder(resp.Body).Decode(&destroyed); err != nil {
		return err
	}
	if destroyed.Result != "ok" {
		return fmt.Errorf("media host delete returned %q", destroyed.Result)
	}
	return nil
}

// extractPublicID recovers the host-side id from an asset URL: the path
// without its version prefix or file extension.
func extractPublicID(assetURL string) (string, error) {
	parsed, err := url.Parse(assetURL)
	if err != nil || parsed.Path == "" {
		return "", fmt.Errorf("invalid media asset url %q", assetURL)
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) == 0 {
		return "", fmt.Errorf("invalid media asset url %q", assetURL)
	}
	// drop a leading version segment like v1712345678
	if len(segments) > 1 && isVersionSegment(segments[0]) {
		segments = segments[1:]
	}
	publicID := strings.Join(segments, "/")
	if ext := path.Ext(publicID); ext != "" {
		publicID = strings.TrimSuffix(publicID, ext)
	}
	if publicID == "" {
		return "", fmt.Errorf("invalid media asset url %q", assetURL)
	}
	return publicID, nil
}

func isVersionSegment(segment string) bool {
	if len(segment) < 2 || segment[0] != 'v' {
		return false
	}
	for _, r := range segment[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
