package allocation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/skill-planner/internal/engine/allocation"
	"github.com/KirkDiggler/skill-planner/internal/engine/budget"
	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
	"github.com/KirkDiggler/skill-planner/internal/errors"
	"github.com/KirkDiggler/skill-planner/internal/testutils/builders"
)

type EngineTestSuite struct {
	suite.Suite
	archetype *skillbook.Archetype
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.archetype = builders.StandardArchetype()
}

func (s *EngineTestSuite) newEngine(level int) *allocation.Engine {
	e, err := allocation.New(&allocation.Config{
		Archetype:      s.archetype,
		CharacterLevel: level,
	})
	s.Require().NoError(err)
	return e
}

// fillFirstBranch invests n points into branch 1 in catalog order
func (s *EngineTestSuite) fillFirstBranch(e *allocation.Engine, n int) {
	for _, id := range []int{1001, 1002, 1003, 1005} {
		for n > 0 && e.Increase(id) {
			n--
		}
	}
	s.Require().Zero(n, "branch 1 could not absorb the requested points")
}

func (s *EngineTestSuite) TestNewRequiresArchetype() {
	_, err := allocation.New(&allocation.Config{CharacterLevel: 30})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = allocation.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestNewStartsAtZero() {
	e := s.newEngine(30)

	s.Equal(62, e.TotalPoints())
	s.Equal(0, e.UsedPoints())
	s.Equal(62, e.RemainingPoints())
	for _, status := range e.SkillStatuses() {
		s.Zero(status.Level)
	}
	s.Len(e.Snapshot().Levels, 10)
}

func (s *EngineTestSuite) TestSecondBranchUnlocksAtThreshold() {
	s.Run("61 points in branch 1 unlocks branch 2", func() {
		e := s.newEngine(30)
		s.fillFirstBranch(e, 61)

		s.Equal(61, e.UsedPoints())
		s.True(e.IsBranchUnlocked(2))
		s.True(e.CanIncrease(2001))
		s.True(e.Increase(2001))
		s.Equal(0, e.RemainingPoints())
	})

	s.Run("60 points leaves branch 2 locked", func() {
		e := s.newEngine(30)
		s.fillFirstBranch(e, 60)

		s.False(e.IsBranchUnlocked(2))
		s.False(e.IsSkillActive(2001))
		s.False(e.Increase(2001))
		s.Equal(0, e.Level(2001))
	})
}

func (s *EngineTestSuite) TestBranchCannotUnlockItself() {
	e, err := allocation.New(&allocation.Config{
		Archetype:      s.archetype,
		CharacterLevel: 120,
		Snapshot: &skillbook.Snapshot{
			Levels: map[int]int{1001: 20, 1002: 20, 1003: 20, 2001: 20, 2002: 30},
		},
	})
	s.Require().NoError(err)

	s.Equal(110, e.UsedPoints())
	s.False(e.IsBranchUnlocked(2), "branch 2 points must not count toward its own unlock")

	status := e.BranchStatus(2)
	s.Equal(61, status.RequiredPoints)
	s.Equal(60, status.CommittedPoints)
	s.Equal(50, status.InvestedPoints)
	s.False(status.Unlocked)
}

func (s *EngineTestSuite) TestFirstBranchAlwaysUnlocked() {
	e := s.newEngine(10)
	s.True(e.IsBranchUnlocked(1))
	s.Equal(0, e.BranchThreshold(1))
}

func (s *EngineTestSuite) TestBranchThresholds() {
	e := s.newEngine(200)
	s.Equal(61, e.BranchStatus(2).RequiredPoints)
	s.Equal(182, e.BranchStatus(3).RequiredPoints)
	s.Equal(333, e.BranchStatus(4).RequiredPoints)
}

func (s *EngineTestSuite) TestMagicianBaseUnlockLevel() {
	archetype := builders.StandardArchetype()
	archetype.BaseUnlockLevel = budget.BaseUnlockLevelMagician

	e, err := allocation.New(&allocation.Config{Archetype: archetype, CharacterLevel: 8})
	s.Require().NoError(err)

	s.Equal(1, e.TotalPoints())
	s.Equal(67, e.BranchThreshold(2))
}

func (s *EngineTestSuite) TestPrerequisites() {
	e := s.newEngine(30)

	s.True(e.ArePrerequisitesSatisfied(1001), "no requirements is vacuously satisfied")

	s.True(e.Increase(1001))
	s.True(e.Increase(1001))
	s.False(e.ArePrerequisitesSatisfied(1004))
	s.False(e.CanIncrease(1004))
	s.False(e.Increase(1004))

	used := e.UsedPoints()
	s.True(e.Increase(1001))
	s.True(e.CanIncrease(1004), "requirement met the instant 1001 reaches 3")
	s.Equal(used+1, e.UsedPoints())
}

func (s *EngineTestSuite) TestUnknownPrerequisiteCountsAsZero() {
	archetype := builders.NewArchetypeBuilder(112).
		WithBranch(1, builders.NewSkillBuilder(1).WithRequirement(999, 1).Build()).
		Build()
	e, err := allocation.New(&allocation.Config{Archetype: archetype, CharacterLevel: 30})
	s.Require().NoError(err)

	s.False(e.ArePrerequisitesSatisfied(1))
	s.False(e.Increase(1))
}

func (s *EngineTestSuite) TestIncreaseDecreaseRoundTrip() {
	e := s.newEngine(30)
	s.Require().True(e.Increase(1002))
	before := e.Snapshot()

	s.Require().True(e.Increase(1002))
	s.Require().True(e.DecreaseOne(1002))

	s.Equal(before, e.Snapshot())
}

func (s *EngineTestSuite) TestIncreaseIdempotentAtMaster() {
	e := s.newEngine(100)
	s.Require().True(e.SetToMaster(1005))
	s.Equal(10, e.Level(1005))
	snapshot := e.Snapshot()

	for range 5 {
		s.False(e.Increase(1005))
	}
	s.False(e.SetToMaster(1005))
	s.Equal(snapshot, e.Snapshot())
}

func (s *EngineTestSuite) TestSetToMasterCapsAtRemaining() {
	e := s.newEngine(12)
	s.Equal(7, e.TotalPoints())

	s.True(e.SetToMaster(1001))
	s.Equal(7, e.Level(1001))
	s.Equal(0, e.RemainingPoints())
	s.False(e.CanIncrease(1002))
	s.False(e.SetToMaster(1002))
}

func (s *EngineTestSuite) TestSetToMasterCapsAtMasterLevel() {
	e := s.newEngine(30)
	s.True(e.Increase(1001))

	s.True(e.SetToMaster(1001))
	s.Equal(20, e.Level(1001))
	s.Equal(42, e.RemainingPoints())
}

func (s *EngineTestSuite) TestSetToZero() {
	e := s.newEngine(30)
	s.Require().True(e.SetToMaster(1002))

	s.True(e.SetToZero(1002))
	s.Equal(0, e.Level(1002))
	s.Equal(0, e.UsedPoints())
	s.False(e.SetToZero(1002))
}

func (s *EngineTestSuite) TestDecreaseAllowedOnInactiveSkill() {
	e := s.newEngine(30)
	for range 3 {
		s.Require().True(e.Increase(1001))
	}
	s.Require().True(e.Increase(1004))
	s.Require().True(e.DecreaseOne(1001))

	s.False(e.IsSkillActive(1004))
	s.False(e.CanIncrease(1004))
	s.True(e.CanDecrease(1004))
	s.True(e.DecreaseOne(1004))
	s.Equal(0, e.Level(1004))
	s.False(e.DecreaseOne(1004))
}

func (s *EngineTestSuite) TestResetAll() {
	e := s.newEngine(30)
	s.fillFirstBranch(e, 61)
	s.Require().True(e.Increase(2001))
	total := e.TotalPoints()

	e.ResetAll()

	s.Equal(0, e.UsedPoints())
	s.Equal(total, e.TotalPoints())
	s.Equal(30, e.CharacterLevel())
	for id, level := range e.Snapshot().Levels {
		s.Zero(level, "skill %d", id)
	}
}

func (s *EngineTestSuite) TestLoweringLevelGoesOverBudget() {
	e := s.newEngine(30)
	s.fillFirstBranch(e, 61)

	e.SetCharacterLevel(20)

	summary := e.Summary()
	s.Equal(31, summary.TotalPoints)
	s.Equal(61, summary.UsedPoints)
	s.Equal(-30, summary.RemainingPoints)
	s.True(summary.OverBudget)
	s.Equal(61, e.UsedPoints(), "allocations are never clamped")

	s.False(e.Increase(1005))
	s.True(e.DecreaseOne(1005))
	s.Equal(-29, e.RemainingPoints())
}

func (s *EngineTestSuite) TestUnknownSkill() {
	e := s.newEngine(30)

	s.False(e.Increase(9999))
	s.False(e.DecreaseOne(9999))
	s.False(e.SetToMaster(9999))
	s.False(e.SetToZero(9999))
	s.False(e.IsSkillActive(9999))
	s.Equal(0, e.Level(9999))

	_, ok := e.SkillStatus(9999)
	s.False(ok)
}

func (s *EngineTestSuite) TestSnapshotRestore() {
	e, err := allocation.New(&allocation.Config{
		Archetype:      s.archetype,
		CharacterLevel: 30,
		Snapshot: &skillbook.Snapshot{
			CharacterLevel: 45,
			Levels: map[int]int{
				1001: 5,
				1002: 99,
				1003: -4,
				7777: 3,
			},
		},
	})
	s.Require().NoError(err)

	s.Equal(45, e.CharacterLevel())
	s.Equal(5, e.Level(1001))
	s.Equal(20, e.Level(1002), "clamped to master level")
	s.Equal(0, e.Level(1003), "negative restored as zero")
	s.Equal(0, e.Level(1005), "missing ids default to zero")
	s.Equal(25, e.UsedPoints())

	_, known := e.Snapshot().Levels[7777]
	s.False(known, "unknown ids are dropped")
}

func (s *EngineTestSuite) TestUnavailableBranch() {
	archetype := builders.StandardArchetype()
	archetype.Branches[2] = nil
	archetype.BranchErrors[2] = "skillbook 111 unavailable"

	e, err := allocation.New(&allocation.Config{Archetype: archetype, CharacterLevel: 30})
	s.Require().NoError(err)

	statuses := e.BranchStatuses()
	s.Require().Len(statuses, 4)
	s.True(statuses[0].Available)
	s.False(statuses[2].Available)

	_, ok := e.SkillStatus(3001)
	s.False(ok)
	s.True(e.Increase(1001), "other branches keep working")
}

func (s *EngineTestSuite) TestUnavailableBranchLevelsSurviveSnapshot() {
	archetype := builders.StandardArchetype()
	archetype.Branches[0] = nil
	archetype.BranchErrors[0] = "skillbook 100 unavailable"

	e, err := allocation.New(&allocation.Config{
		Archetype: archetype,
		Snapshot: &skillbook.Snapshot{
			CharacterLevel: 30,
			Levels:         map[int]int{1001: 20, 1002: 20, 1003: 20, 1005: 10, 2001: 5},
		},
	})
	s.Require().NoError(err)

	s.Equal(5, e.UsedPoints(), "missing stage levels do not count")
	s.Equal(0, e.Level(1001))
	s.True(e.DecreaseOne(2001))

	levels := e.Snapshot().Levels
	s.Equal(20, levels[1001])
	s.Equal(20, levels[1002])
	s.Equal(20, levels[1003])
	s.Equal(10, levels[1005])
	s.Equal(4, levels[2001])

	e.ResetAll()
	_, kept := e.Snapshot().Levels[1001]
	s.False(kept, "reset clears missing stage levels too")
}

func (s *EngineTestSuite) TestUnknownIDsDroppedWhenCatalogComplete() {
	e, err := allocation.New(&allocation.Config{
		Archetype: s.archetype,
		Snapshot: &skillbook.Snapshot{
			CharacterLevel: 30,
			Levels:         map[int]int{1001: 3, 9999: 7},
		},
	})
	s.Require().NoError(err)

	_, kept := e.Snapshot().Levels[9999]
	s.False(kept)
	s.Equal(3, e.UsedPoints())
}

func (s *EngineTestSuite) TestFourthOnlyMode() {
	e, err := allocation.New(&allocation.Config{
		Archetype:      s.archetype,
		CharacterLevel: 150,
		Mode:           budget.ModeFourthOnly,
		Snapshot: &skillbook.Snapshot{
			Levels: map[int]int{1001: 20},
		},
	})
	s.Require().NoError(err)

	s.Equal(93, e.TotalPoints())
	s.Equal(0, e.UsedPoints(), "earlier stages are out of scope")
	s.True(e.IsBranchUnlocked(4))
	s.False(e.IsBranchUnlocked(1))
	s.False(e.Increase(1002))
	s.True(e.CanDecrease(1001))

	s.True(e.SetToMaster(4001))
	s.Equal(30, e.UsedPoints())
	s.True(e.CanIncrease(4002))

	e.SetMode(budget.ModeFull)
	s.Equal(50, e.UsedPoints())
	s.Equal(budget.TotalPoints(150, 10), e.TotalPoints())
}

func (s *EngineTestSuite) TestSkillStatus() {
	e := s.newEngine(30)
	s.Require().True(e.Increase(1001))

	status, ok := e.SkillStatus(1001)
	s.Require().True(ok)
	s.Equal(allocation.SkillStatus{
		SkillID:     1001,
		Branch:      1,
		Level:       1,
		MasterLevel: 20,
		Active:      true,
		CanIncrease: true,
		CanDecrease: true,
	}, status)

	locked, ok := e.SkillStatus(2001)
	s.Require().True(ok)
	s.False(locked.Active)
	s.False(locked.CanIncrease)
	s.False(locked.CanDecrease)
}
