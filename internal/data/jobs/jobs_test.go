package jobs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/skill-planner/internal/data/jobs"
	"github.com/KirkDiggler/skill-planner/internal/engine/budget"
	"github.com/KirkDiggler/skill-planner/internal/errors"
)

type RegistryTestSuite struct {
	suite.Suite
	registry *jobs.Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) SetupTest() {
	s.registry = jobs.Default()
}

func (s *RegistryTestSuite) TestSelectable() {
	var ids []int
	for _, a := range s.registry.Selectable() {
		ids = append(ids, a.ID)
	}
	s.Equal([]int{112, 122, 132, 212, 222, 232, 312, 322, 412, 422, 512, 522}, ids)
}

func (s *RegistryTestSuite) TestGroups() {
	groups := s.registry.Groups()
	s.Require().Len(groups, 5)

	var names []string
	for _, g := range groups {
		names = append(names, g.KoreanName)
	}
	s.Equal([]string{"전사", "마법사", "궁수", "도적", "해적"}, names)
	s.Len(groups[0].Archetypes, 3)
	s.Len(groups[4].Archetypes, 2)
}

func (s *RegistryTestSuite) TestGet() {
	hero, err := s.registry.Get(112)
	s.Require().NoError(err)
	s.Equal("Hero (4th)", hero.Name)
	s.Equal("히어로", hero.KoreanName)
	s.Equal("Warrior", hero.Group)

	_, err = s.registry.Get(110)
	s.True(errors.IsNotFound(err), "2nd stage jobs are not selectable")
}

func (s *RegistryTestSuite) TestLine() {
	testCases := []struct {
		archetype int
		expected  [jobs.LineLength]int
	}{
		{archetype: 112, expected: [4]int{100, 110, 111, 112}},
		{archetype: 232, expected: [4]int{200, 230, 231, 232}},
		{archetype: 422, expected: [4]int{400, 420, 421, 422}},
		{archetype: 522, expected: [4]int{500, 520, 521, 522}},
	}

	for _, tc := range testCases {
		line, err := s.registry.Line(tc.archetype)
		s.Require().NoError(err)
		s.Equal(tc.expected, line)
	}

	_, err := s.registry.Line(999)
	s.True(errors.IsNotFound(err))
}

func (s *RegistryTestSuite) TestBaseUnlockLevel() {
	for _, a := range s.registry.Selectable() {
		level, err := s.registry.BaseUnlockLevel(a.ID)
		s.Require().NoError(err)
		if a.ID >= 200 && a.ID < 300 {
			s.Equal(budget.BaseUnlockLevelMagician, level, "archetype %d", a.ID)
		} else {
			s.Equal(budget.BaseUnlockLevelDefault, level, "archetype %d", a.ID)
		}
	}
}

func (s *RegistryTestSuite) TestJob() {
	job, ok := s.registry.Job(421)
	s.Require().True(ok)
	s.Equal("시프마스터", job.KoreanName)

	_, ok = s.registry.Job(7)
	s.False(ok)
}

func (s *RegistryTestSuite) TestLoadRejectsBadTables() {
	testCases := []struct {
		name string
		raw  string
	}{
		{
			name: "unknown archetype",
			raw: `
jobs: [{id: 100, name: a}]
groups: [{name: g, archetypes: [{id: 112, line: [100, 110, 111, 112]}]}]`,
		},
		{
			name: "short line",
			raw: `
jobs: [{id: 100, name: a}, {id: 112, name: b}]
groups: [{name: g, archetypes: [{id: 112, line: [100, 112]}]}]`,
		},
		{
			name: "line not ending in archetype",
			raw: `
jobs: [{id: 100, name: a}, {id: 112, name: b}]
groups: [{name: g, archetypes: [{id: 112, line: [100, 100, 100, 100]}]}]`,
		},
		{
			name: "duplicate job",
			raw:  `jobs: [{id: 100, name: a}, {id: 100, name: b}]`,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := jobs.Load([]byte(tc.raw))
			s.Error(err)
		})
	}

	s.Run("malformed yaml", func() {
		_, err := jobs.Load([]byte("jobs: ["))
		s.Error(err)
	})
}

func (s *RegistryTestSuite) TestLoadDefaultsBaseUnlockLevel() {
	r, err := jobs.Load([]byte(`
jobs: [{id: 1, name: a}, {id: 2, name: b}, {id: 3, name: c}, {id: 4, name: d}]
groups: [{name: g, archetypes: [{id: 4, line: [1, 2, 3, 4]}]}]`))
	s.Require().NoError(err)

	level, err := r.BaseUnlockLevel(4)
	s.Require().NoError(err)
	s.Equal(budget.BaseUnlockLevelDefault, level)
}
