package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/skill-planner/internal/clients/catalog"
	"github.com/KirkDiggler/skill-planner/internal/errors"
)

type HTTPSourceTestSuite struct {
	suite.Suite
	server *httptest.Server
	source *catalog.HTTPSource
	paths  []string
}

func TestHTTPSourceSuite(t *testing.T) {
	suite.Run(t, new(HTTPSourceTestSuite))
}

func (s *HTTPSourceTestSuite) SetupTest() {
	s.paths = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.paths = append(s.paths, r.URL.Path)
		switch r.URL.Path {
		case "/api/GMS/62/job/100/skillbook":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"skills": []}`))
		case "/api/GMS/62/job/500/skillbook":
			w.WriteHeader(http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))

	source, err := catalog.NewHTTPSource(&catalog.HTTPSourceConfig{
		BaseURL: s.server.URL + "/api/GMS/62/",
	})
	s.Require().NoError(err)
	s.source = source
}

func (s *HTTPSourceTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *HTTPSourceTestSuite) TestFetch() {
	body, err := s.source.FetchSkillbook(context.Background(), 100)
	s.Require().NoError(err)
	s.JSONEq(`{"skills": []}`, string(body))
	s.Equal([]string{"/api/GMS/62/job/100/skillbook"}, s.paths)
}

func (s *HTTPSourceTestSuite) TestNotFound() {
	_, err := s.source.FetchSkillbook(context.Background(), 999)
	s.True(errors.IsNotFound(err))
	s.Equal(http.StatusNotFound, errors.GetMeta(err)["status"])
}

func (s *HTTPSourceTestSuite) TestUpstreamFailure() {
	_, err := s.source.FetchSkillbook(context.Background(), 500)
	s.True(errors.IsUnavailable(err))
}

func (s *HTTPSourceTestSuite) TestServerDown() {
	s.server.Close()
	_, err := s.source.FetchSkillbook(context.Background(), 100)
	s.True(errors.IsUnavailable(err))
}

func (s *HTTPSourceTestSuite) TestDefaults() {
	cfg := &catalog.HTTPSourceConfig{}
	s.Require().NoError(cfg.Validate())
	s.Equal(catalog.DefaultBaseURL, cfg.BaseURL)
	s.Positive(cfg.Timeout)

	s.Error((&catalog.HTTPSourceConfig{Timeout: -1}).Validate())
}

type DirSourceTestSuite struct {
	suite.Suite
	dir string
}

func TestDirSourceSuite(t *testing.T) {
	suite.Run(t, new(DirSourceTestSuite))
}

func (s *DirSourceTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "110.json"), []byte(`{"skills": []}`), 0o600))
}

func (s *DirSourceTestSuite) TestFetch() {
	source, err := catalog.NewDirSource(s.dir)
	s.Require().NoError(err)

	body, err := source.FetchSkillbook(context.Background(), 110)
	s.Require().NoError(err)
	s.Equal(`{"skills": []}`, string(body))

	_, err = source.FetchSkillbook(context.Background(), 111)
	s.True(errors.IsNotFound(err))
}

func (s *DirSourceTestSuite) TestCanceled() {
	source, err := catalog.NewDirSource(s.dir)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = source.FetchSkillbook(ctx, 110)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *DirSourceTestSuite) TestInvalidDirectory() {
	_, err := catalog.NewDirSource("")
	s.True(errors.IsInvalidArgument(err))

	_, err = catalog.NewDirSource(filepath.Join(s.dir, "missing"))
	s.True(errors.IsInvalidArgument(err))

	_, err = catalog.NewDirSource(filepath.Join(s.dir, "110.json"))
	s.True(errors.IsInvalidArgument(err))
}
