package builds

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
	"github.com/KirkDiggler/skill-planner/internal/errors"
	redisclient "github.com/KirkDiggler/skill-planner/internal/redis"
)

const (
	buildKeyPrefix = "build:"

	// DefaultTTL keeps an untouched build for 30 days
	DefaultTTL = 30 * 24 * time.Hour

	errBuildNil     = "build cannot be nil"
	errBuildIDEmpty = "build ID cannot be empty"
)

// Config configures the Redis build store
type Config struct {
	Client redisclient.Client
	// TTL defaults to DefaultTTL; every write refreshes it
	TTL time.Duration
}

// Validate validates the config and sets defaults
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed build repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid build repository config")
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

func buildKey(id string) string {
	return buildKeyPrefix + id
}

func validateBuild(build *skillbook.Build) error {
	if build == nil {
		return errors.InvalidArgument(errBuildNil)
	}
	if build.ID == "" {
		return errors.InvalidArgument(errBuildIDEmpty)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateBuild(input.Build); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Build)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal build")
	}

	created, err := r.client.SetNX(ctx, buildKey(input.Build.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create build")
	}
	if !created {
		return nil, errors.AlreadyExistsf("build with ID %s already exists", input.Build.ID)
	}

	return &CreateOutput{Build: input.Build}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	result, err := r.client.Get(ctx, buildKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("build with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get build")
	}

	var build skillbook.Build
	if err := json.Unmarshal(result, &build); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal build")
	}

	return &GetOutput{Build: &build}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateBuild(input.Build); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Build)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal build")
	}

	// XX only writes when the key exists, so a concurrent delete or expiry
	// surfaces as NotFound instead of resurrecting the build.
	err = r.client.SetArgs(ctx, buildKey(input.Build.ID), data, redis.SetArgs{
		Mode: "XX",
		TTL:  r.ttl,
	}).Err()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("build with ID %s not found", input.Build.ID)
		}
		return nil, errors.Wrapf(err, "failed to update build")
	}

	return &UpdateOutput{Build: input.Build}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	deleted, err := r.client.Del(ctx, buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete build")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("build with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
