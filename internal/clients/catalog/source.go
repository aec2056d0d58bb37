package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/skill-planner/internal/errors"
)

// DefaultBaseURL serves the GMS v62 skillbooks
const DefaultBaseURL = "https://maplestory.io/api/GMS/62"

// maxSkillbookSize bounds a single skillbook response; real books are a few
// hundred kilobytes because icons are inlined as base64
const maxSkillbookSize = 16 << 20

// Source fetches the raw skillbook document of a job
type Source interface {
	FetchSkillbook(ctx context.Context, jobID int) ([]byte, error)
}

// HTTPSourceConfig configures an HTTPSource
type HTTPSourceConfig struct {
	// BaseURL defaults to DefaultBaseURL
	BaseURL string
	// Timeout per request, defaults to 15 seconds
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout
	HTTPClient *http.Client
}

// Validate sets defaults
func (cfg *HTTPSourceConfig) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Timeout < 0 {
		return errors.InvalidArgument("timeout must not be negative")
	}
	return nil
}

// HTTPSource reads skillbooks from the maplestory.io API
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates an HTTP backed source
func NewHTTPSource(cfg *HTTPSourceConfig) (*HTTPSource, error) {
	if cfg == nil {
		cfg = &HTTPSourceConfig{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &HTTPSource{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  client,
	}, nil
}

// FetchSkillbook implements Source
func (s *HTTPSource) FetchSkillbook(ctx context.Context, jobID int) ([]byte, error) {
	url := fmt.Sprintf("%s/job/%d/skillbook", s.baseURL, jobID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for job %d", jobID)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("failed to fetch skillbook for job %d", jobID))
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NotFoundf("skillbook for job %d not found", jobID).
			WithMeta("status", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.Unavailablef("skillbook fetch for job %d returned %s", jobID, resp.Status).
			WithMeta("status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSkillbookSize))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("failed to read skillbook for job %d", jobID))
	}
	return body, nil
}

// DirSource reads skillbooks saved as <dir>/<jobID>.json
type DirSource struct {
	dir string
}

// NewDirSource creates a directory backed source
func NewDirSource(dir string) (*DirSource, error) {
	if dir == "" {
		return nil, errors.InvalidArgument("catalog directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "catalog directory is not readable")
	}
	if !info.IsDir() {
		return nil, errors.InvalidArgumentf("%s is not a directory", dir)
	}
	return &DirSource{dir: dir}, nil
}

// FetchSkillbook implements Source
func (s *DirSource) FetchSkillbook(ctx context.Context, jobID int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "skillbook read canceled")
	}

	path := filepath.Join(s.dir, strconv.Itoa(jobID)+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("skillbook for job %d not found", jobID).WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to read skillbook for job %d", jobID)
	}
	return data, nil
}
