// Package catalog loads the four stage skillbooks of an archetype
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/KirkDiggler/skill-planner/internal/clients/catalog Client,Source

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/skill-planner/internal/data/jobs"
	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
	"github.com/KirkDiggler/skill-planner/internal/errors"
	"github.com/KirkDiggler/skill-planner/internal/pkg/clock"
)

const (
	// DefaultCacheTTL is how long a decoded skillbook is reused
	DefaultCacheTTL = 24 * time.Hour
	// DefaultFetchTimeout bounds one shared skillbook fetch
	DefaultFetchTimeout = 30 * time.Second
)

// Client defines catalog lookups used by the planner
type Client interface {
	// LoadArchetype returns the archetype with every stage skillbook that
	// could be loaded. Stages that failed are left nil and their error is
	// recorded on the archetype.
	LoadArchetype(ctx context.Context, archetypeID int) (*skillbook.Archetype, error)
}

// Config contains configuration for the catalog client
type Config struct {
	Source Source
	Jobs   *jobs.Registry
	// CacheTTL defaults to DefaultCacheTTL; negative disables caching
	CacheTTL time.Duration
	// FetchTimeout bounds a fetch shared by concurrent callers, which no
	// longer follows any single caller's context
	FetchTimeout time.Duration
	Clock        clock.Clock
}

// Validate validates the Config and sets defaults
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Source == nil {
		vb.RequiredField("Source")
	}
	if cfg.Jobs == nil {
		cfg.Jobs = jobs.Default()
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.FetchTimeout < 0 {
		vb.Field("FetchTimeout", "must not be negative")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}

	return vb.Build()
}

type client struct {
	source       Source
	jobs         *jobs.Registry
	cache        *branchCache
	fetchTimeout time.Duration
	group        singleflight.Group
}

// New creates a catalog client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog config")
	}

	return &client{
		source:       cfg.Source,
		jobs:         cfg.Jobs,
		cache:        newBranchCache(cfg.CacheTTL, cfg.Clock),
		fetchTimeout: cfg.FetchTimeout,
	}, nil
}

func (c *client) LoadArchetype(ctx context.Context, archetypeID int) (*skillbook.Archetype, error) {
	job, err := c.jobs.Get(archetypeID)
	if err != nil {
		return nil, err
	}

	archetype := &skillbook.Archetype{
		ID:              job.ID,
		Name:            job.Name,
		KoreanName:      job.KoreanName,
		BaseUnlockLevel: job.BaseUnlockLevel,
	}

	// Stage failures are recorded rather than returned so the remaining
	// stages still load.
	g, gctx := errgroup.WithContext(ctx)
	for i, jobID := range job.Line {
		g.Go(func() error {
			branch, err := c.loadBranch(gctx, i+1, jobID)
			if err != nil {
				slog.Warn("skillbook unavailable",
					"archetype_id", archetypeID,
					"job_id", jobID,
					"branch", i+1,
					"error", err)
				archetype.BranchErrors[i] = err.Error()
				return nil
			}
			archetype.Branches[i] = branch
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "archetype load canceled")
	}

	for _, branch := range archetype.Branches {
		if branch != nil {
			return archetype, nil
		}
	}
	return nil, errors.Unavailablef("no skillbook could be loaded for archetype %d", archetypeID).
		WithMeta("errors", archetype.BranchErrors)
}

func (c *client) loadBranch(ctx context.Context, index, jobID int) (*skillbook.Branch, error) {
	if branch, ok := c.cache.get(jobID); ok {
		return branch, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The fetch is shared with every concurrent caller for this job, so it
	// must outlive the caller that started it.
	results := c.group.DoChan(strconv.Itoa(jobID), func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()

		raw, err := c.source.FetchSkillbook(fetchCtx, jobID)
		if err != nil {
			return nil, err
		}

		branch, err := decodeSkillbook(raw, index, jobID)
		if err != nil {
			return nil, err
		}
		if branch.JobName == "" {
			if job, ok := c.jobs.Job(jobID); ok {
				branch.JobName = job.Name
			}
		}

		c.cache.put(jobID, branch)
		slog.Debug("skillbook loaded", "job_id", jobID, "skills", len(branch.Skills))
		return branch, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*skillbook.Branch), nil
	}
}
