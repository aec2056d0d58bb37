package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/skill-planner/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	g := idgen.NewUUID("build")

	id := g.Generate()
	require.True(t, strings.HasPrefix(id, "build_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "build_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, g.Generate())

	bare := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(bare)
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	g := idgen.NewSequential("build")
	assert.Equal(t, "build_1", g.Generate())
	assert.Equal(t, "build_2", g.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
