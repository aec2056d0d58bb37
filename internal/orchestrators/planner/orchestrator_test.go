package planner_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalogmock "github.com/KirkDiggler/skill-planner/internal/clients/catalog/mock"
	"github.com/KirkDiggler/skill-planner/internal/engine/budget"
	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
	"github.com/KirkDiggler/skill-planner/internal/errors"
	orchestrator "github.com/KirkDiggler/skill-planner/internal/orchestrators/planner"
	"github.com/KirkDiggler/skill-planner/internal/pkg/clock"
	"github.com/KirkDiggler/skill-planner/internal/pkg/idgen"
	buildsrepo "github.com/KirkDiggler/skill-planner/internal/repositories/builds"
	buildsmock "github.com/KirkDiggler/skill-planner/internal/repositories/builds/mock"
	"github.com/KirkDiggler/skill-planner/internal/services/planner"
	"github.com/KirkDiggler/skill-planner/internal/testutils"
	"github.com/KirkDiggler/skill-planner/internal/testutils/builders"
	"github.com/KirkDiggler/skill-planner/internal/testutils/mocks"
)

const testBuildID = "build_1"

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockCatalog  *catalogmock.MockClient
	mockRepo     *buildsmock.MockRepository
	clock        *clock.Manual
	bus          events.EventBus
	published    []events.Event
	orchestrator *orchestrator.Orchestrator
	ctx          context.Context
	archetype    *skillbook.Archetype
	start        time.Time
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = catalogmock.NewMockClient(s.ctrl)
	s.mockRepo = buildsmock.NewMockRepository(s.ctrl)
	s.start = testutils.TestBuildTime
	s.clock = clock.NewManual(s.start)
	s.ctx = context.Background()
	s.archetype = builders.StandardArchetype()

	s.bus = events.NewBus()
	s.published = nil
	for _, eventType := range []string{
		orchestrator.EventBuildCreated,
		orchestrator.EventBuildDeleted,
		orchestrator.EventBuildReset,
		orchestrator.EventAllocationChanged,
		orchestrator.EventCharacterLevelChanged,
		orchestrator.EventModeChanged,
	} {
		s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			s.published = append(s.published, e)
			return nil
		})
	}

	o, err := orchestrator.New(&orchestrator.Config{
		BuildRepo:   s.mockRepo,
		Catalog:     s.mockCatalog,
		EventBus:    s.bus,
		IDGenerator: idgen.NewSequential("build"),
		Clock:       s.clock,
	})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) storedBuild(level int, levels map[int]int) *skillbook.Build {
	build := testutils.CreateTestBuild(testBuildID, s.archetype.ID)
	build.Snapshot.CharacterLevel = level
	build.Snapshot.Levels = levels
	return build
}

func (s *OrchestratorTestSuite) expectOpen(build *skillbook.Build) {
	mocks.ExpectBuildOpen(s.ctx, s.mockRepo, s.mockCatalog, build, s.archetype)
}

func (s *OrchestratorTestSuite) expectSave() *skillbook.Build {
	return mocks.ExpectBuildSave(s.ctx, s.mockRepo)
}

func (s *OrchestratorTestSuite) TestNewValidation() {
	_, err := orchestrator.New(&orchestrator.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = orchestrator.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListArchetypes() {
	out, err := s.orchestrator.ListArchetypes(s.ctx, &planner.ListArchetypesInput{})
	s.Require().NoError(err)
	s.Len(out.Groups, 5)
	s.Equal("전사", out.Groups[0].KoreanName)
}

func (s *OrchestratorTestSuite) TestGetArchetype() {
	s.mockCatalog.EXPECT().LoadArchetype(s.ctx, 112).Return(s.archetype, nil)

	out, err := s.orchestrator.GetArchetype(s.ctx, &planner.GetArchetypeInput{ArchetypeID: 112})
	s.Require().NoError(err)
	s.Same(s.archetype, out.Archetype)

	s.Run("not found keeps code", func() {
		s.mockCatalog.EXPECT().LoadArchetype(s.ctx, 7).Return(nil, errors.NotFound("archetype 7 not found"))
		_, err := s.orchestrator.GetArchetype(s.ctx, &planner.GetArchetypeInput{ArchetypeID: 7})
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestCreateBuild() {
	s.mockCatalog.EXPECT().LoadArchetype(s.ctx, s.archetype.ID).Return(s.archetype, nil)

	var created *skillbook.Build
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input buildsrepo.CreateInput) (*buildsrepo.CreateOutput, error) {
			created = input.Build
			return &buildsrepo.CreateOutput{Build: input.Build}, nil
		})

	out, err := s.orchestrator.CreateBuild(s.ctx, &planner.CreateBuildInput{
		ArchetypeID:    s.archetype.ID,
		CharacterLevel: 30,
	})
	s.Require().NoError(err)

	s.Require().NotNil(created)
	s.Equal("build_1", created.ID)
	s.Equal(s.start, created.CreatedAt)
	s.Equal(30, created.Snapshot.CharacterLevel)
	s.Len(created.Snapshot.Levels, 10)

	view := out.View
	s.Equal(budget.ModeFull, view.Mode)
	s.Equal(62, view.Summary.TotalPoints)
	s.Equal(62, view.Summary.RemainingPoints)
	s.Len(view.Branches, 4)
	s.Len(view.Skills, 10)
	s.Nil(view.BranchErrors)

	s.Require().Len(s.published, 1)
	s.Equal(orchestrator.EventBuildCreated, s.published[0].Type())
	s.Equal("build_1", s.published[0].Source().GetID())
}

func (s *OrchestratorTestSuite) TestCreateBuildDefaultsLevel() {
	s.mockCatalog.EXPECT().LoadArchetype(s.ctx, s.archetype.ID).Return(s.archetype, nil)
	s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(&buildsrepo.CreateOutput{}, nil)

	out, err := s.orchestrator.CreateBuild(s.ctx, &planner.CreateBuildInput{ArchetypeID: s.archetype.ID})
	s.Require().NoError(err)
	s.Equal(10, out.View.Summary.CharacterLevel)
	s.Equal(1, out.View.Summary.TotalPoints)
}

func (s *OrchestratorTestSuite) TestCreateBuildFromSnapshot() {
	s.mockCatalog.EXPECT().LoadArchetype(s.ctx, s.archetype.ID).Return(s.archetype, nil)
	s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(&buildsrepo.CreateOutput{}, nil)

	out, err := s.orchestrator.CreateBuild(s.ctx, &planner.CreateBuildInput{
		ArchetypeID: s.archetype.ID,
		Snapshot: &skillbook.Snapshot{
			CharacterLevel: 40,
			Levels:         map[int]int{1001: 5, 9999: 3, 1002: 500},
		},
	})
	s.Require().NoError(err)

	snapshot := out.View.Build.Snapshot
	s.Equal(40, snapshot.CharacterLevel)
	s.Equal(5, snapshot.Levels[1001])
	s.Equal(20, snapshot.Levels[1002])
	s.NotContains(snapshot.Levels, 9999)
	s.Equal(25, out.View.Summary.UsedPoints)
}

func (s *OrchestratorTestSuite) TestCreateBuildRejectsLevel() {
	testCases := []struct {
		name  string
		level int
	}{
		{name: "below base", level: 9},
		{name: "above cap", level: 301},
		{name: "negative", level: -5},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCatalog.EXPECT().LoadArchetype(s.ctx, s.archetype.ID).Return(s.archetype, nil)

			_, err := s.orchestrator.CreateBuild(s.ctx, &planner.CreateBuildInput{
				ArchetypeID:    s.archetype.ID,
				CharacterLevel: tc.level,
			})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateBuildRepoFailure() {
	s.mockCatalog.EXPECT().LoadArchetype(s.ctx, s.archetype.ID).Return(s.archetype, nil)
	s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil, errors.Internal("redis down"))

	_, err := s.orchestrator.CreateBuild(s.ctx, &planner.CreateBuildInput{ArchetypeID: s.archetype.ID})
	s.True(errors.IsInternal(err))
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestGetBuild() {
	s.expectOpen(s.storedBuild(30, map[int]int{1001: 20}))

	out, err := s.orchestrator.GetBuild(s.ctx, &planner.GetBuildInput{BuildID: testBuildID})
	s.Require().NoError(err)
	s.Equal(20, out.View.Summary.UsedPoints)
	s.Equal(42, out.View.Summary.RemainingPoints)

	s.Run("missing id", func() {
		_, err := s.orchestrator.GetBuild(s.ctx, &planner.GetBuildInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("not found", func() {
		s.mockRepo.EXPECT().Get(s.ctx, buildsrepo.GetInput{ID: "gone"}).
			Return(nil, errors.NotFound("build with ID gone not found"))
		_, err := s.orchestrator.GetBuild(s.ctx, &planner.GetBuildInput{BuildID: "gone"})
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestGetBuildReportsUnavailableBranch() {
	partial := builders.NewArchetypeBuilder(112).
		WithBranch(1, builders.NewSkillBuilder(1001).Build()).
		WithUnavailableBranch(2, "upstream down").
		Build()
	build := s.storedBuild(30, nil)

	s.mockRepo.EXPECT().Get(s.ctx, gomock.Any()).Return(&buildsrepo.GetOutput{Build: build}, nil)
	s.mockCatalog.EXPECT().LoadArchetype(s.ctx, build.ArchetypeID).Return(partial, nil)

	out, err := s.orchestrator.GetBuild(s.ctx, &planner.GetBuildInput{BuildID: testBuildID})
	s.Require().NoError(err)
	s.Equal(map[int]string{2: "upstream down"}, out.View.BranchErrors)
	s.False(out.View.Branches[1].Available)
}

func (s *OrchestratorTestSuite) TestAllocateApplied() {
	s.expectOpen(s.storedBuild(30, nil))
	saved := s.expectSave()
	s.clock.Advance(time.Minute)

	out, err := s.orchestrator.Allocate(s.ctx, &planner.AllocateInput{
		BuildID: testBuildID,
		SkillID: 1001,
		Action:  planner.ActionMaster,
	})
	s.Require().NoError(err)

	s.True(out.Applied)
	s.Equal(20, out.View.Summary.UsedPoints)
	s.Equal(20, saved.Snapshot.Levels[1001])
	s.Equal(s.start.Add(time.Minute), saved.UpdatedAt)

	s.Require().Len(s.published, 1)
	event := s.published[0]
	s.Equal(orchestrator.EventAllocationChanged, event.Type())
	skillID, ok := event.Context().Get(orchestrator.ContextKeySkillID)
	s.True(ok)
	s.Equal(1001, skillID)
	level, _ := event.Context().Get(orchestrator.ContextKeyLevel)
	s.Equal(20, level)
	previous, _ := event.Context().Get(orchestrator.ContextKeyPreviousLevel)
	s.Equal(0, previous)
}

func (s *OrchestratorTestSuite) TestAllocateKeepsLevelsOfUnavailableBranch() {
	s.archetype.Branches[0] = nil
	s.archetype.BranchErrors[0] = "skillbook 100 unavailable"
	s.expectOpen(s.storedBuild(30, map[int]int{1001: 20, 1002: 20, 1003: 20, 1005: 10, 2001: 5}))
	saved := s.expectSave()

	out, err := s.orchestrator.Allocate(s.ctx, &planner.AllocateInput{
		BuildID: testBuildID,
		SkillID: 2001,
		Action:  planner.ActionDecrease,
	})
	s.Require().NoError(err)

	s.True(out.Applied)
	s.Equal("skillbook 100 unavailable", out.View.BranchErrors[1])
	s.Equal(map[int]int{
		1001: 20, 1002: 20, 1003: 20, 1005: 10,
		2001: 4, 2002: 0, 3001: 0, 4001: 0, 4002: 0,
	}, saved.Snapshot.Levels)
}

func (s *OrchestratorTestSuite) TestAllocateEachAction() {
	testCases := []struct {
		name     string
		action   planner.Action
		start    map[int]int
		expected int
	}{
		{name: "increase", action: planner.ActionIncrease, start: map[int]int{1001: 3}, expected: 4},
		{name: "decrease", action: planner.ActionDecrease, start: map[int]int{1001: 3}, expected: 2},
		{name: "zero", action: planner.ActionZero, start: map[int]int{1001: 3}, expected: 0},
		{name: "master", action: planner.ActionMaster, start: map[int]int{1001: 3}, expected: 20},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectOpen(s.storedBuild(30, tc.start))
			saved := s.expectSave()

			out, err := s.orchestrator.Allocate(s.ctx, &planner.AllocateInput{
				BuildID: testBuildID,
				SkillID: 1001,
				Action:  tc.action,
			})
			s.Require().NoError(err)
			s.True(out.Applied)
			s.Equal(tc.expected, saved.Snapshot.Levels[1001])
		})
	}
}

func (s *OrchestratorTestSuite) TestAllocateRejectedIsNotAnError() {
	// 2001 sits in branch 2, which needs 61 points elsewhere
	s.expectOpen(s.storedBuild(30, nil))

	out, err := s.orchestrator.Allocate(s.ctx, &planner.AllocateInput{
		BuildID: testBuildID,
		SkillID: 2001,
		Action:  planner.ActionIncrease,
	})
	s.Require().NoError(err)
	s.False(out.Applied)
	s.Equal(0, out.View.Summary.UsedPoints)
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestAllocateUnknownAction() {
	_, err := s.orchestrator.Allocate(s.ctx, &planner.AllocateInput{
		BuildID: testBuildID,
		SkillID: 1001,
		Action:  "double",
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAllocateSaveFailure() {
	s.expectOpen(s.storedBuild(30, nil))
	s.mockRepo.EXPECT().Update(s.ctx, gomock.Any()).Return(nil, errors.NotFound("build expired"))

	_, err := s.orchestrator.Allocate(s.ctx, &planner.AllocateInput{
		BuildID: testBuildID,
		SkillID: 1001,
		Action:  planner.ActionIncrease,
	})
	s.True(errors.IsNotFound(err))
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestResetBuild() {
	s.expectOpen(s.storedBuild(45, map[int]int{1001: 20, 1002: 10}))
	saved := s.expectSave()

	out, err := s.orchestrator.ResetBuild(s.ctx, &planner.ResetBuildInput{BuildID: testBuildID})
	s.Require().NoError(err)

	s.Equal(0, out.View.Summary.UsedPoints)
	s.Equal(45, saved.Snapshot.CharacterLevel)
	for id, level := range saved.Snapshot.Levels {
		s.Zero(level, "skill %d", id)
	}
	s.Require().Len(s.published, 1)
	s.Equal(orchestrator.EventBuildReset, s.published[0].Type())
}

func (s *OrchestratorTestSuite) TestSetCharacterLevelKeepsOverBudget() {
	s.expectOpen(s.storedBuild(30, map[int]int{1001: 20, 1002: 20, 1003: 20}))
	saved := s.expectSave()

	out, err := s.orchestrator.SetCharacterLevel(s.ctx, &planner.SetCharacterLevelInput{
		BuildID:        testBuildID,
		CharacterLevel: 20,
	})
	s.Require().NoError(err)

	s.True(out.View.Summary.OverBudget)
	s.Equal(31, out.View.Summary.TotalPoints)
	s.Equal(-29, out.View.Summary.RemainingPoints)
	s.Equal(20, saved.Snapshot.CharacterLevel)
	s.Equal(20, saved.Snapshot.Levels[1001])

	s.Require().Len(s.published, 1)
	previous, _ := s.published[0].Context().Get(orchestrator.ContextKeyPreviousLevel)
	s.Equal(30, previous)
}

func (s *OrchestratorTestSuite) TestSetCharacterLevelOutOfRange() {
	s.expectOpen(s.storedBuild(30, nil))

	_, err := s.orchestrator.SetCharacterLevel(s.ctx, &planner.SetCharacterLevelInput{
		BuildID:        testBuildID,
		CharacterLevel: 5,
	})
	s.True(errors.IsInvalidArgument(err))
	s.Equal(10, errors.GetMeta(err)["min"])
}

func (s *OrchestratorTestSuite) TestSetMode() {
	s.expectOpen(s.storedBuild(150, map[int]int{1001: 20, 4001: 10}))
	saved := s.expectSave()

	out, err := s.orchestrator.SetMode(s.ctx, &planner.SetModeInput{BuildID: testBuildID, FourthOnly: true})
	s.Require().NoError(err)

	s.Equal(budget.ModeFourthOnly, out.View.Mode)
	s.Equal(93, out.View.Summary.TotalPoints)
	s.Equal(10, out.View.Summary.UsedPoints)
	s.True(saved.FourthOnly)
	s.Equal(20, saved.Snapshot.Levels[1001], "out of scope investments are kept")

	s.Require().Len(s.published, 1)
	mode, _ := s.published[0].Context().Get(orchestrator.ContextKeyMode)
	s.Equal("fourth_only", mode)
}

func (s *OrchestratorTestSuite) TestSetModeUnchanged() {
	s.expectOpen(s.storedBuild(150, nil))

	out, err := s.orchestrator.SetMode(s.ctx, &planner.SetModeInput{BuildID: testBuildID})
	s.Require().NoError(err)
	s.Equal(budget.ModeFull, out.View.Mode)
	s.Empty(s.published)
}

func (s *OrchestratorTestSuite) TestDescribeSkill() {
	s.archetype.Branches[1].Skills[1] = builders.NewSkillBuilder(2002).
		WithName("소드 부스터").
		WithMasterLevel(20).
		WithDetail("#time초 동안 공격 속도 증가").
		WithRequirement(2001, 5).
		WithLevel(3, "time", "30").
		WithLevel(20, "time", "200").
		Build()

	s.Run("invested level", func() {
		s.expectOpen(s.storedBuild(120, map[int]int{1001: 20, 1002: 20, 1003: 20, 1005: 1, 2001: 5, 2002: 3}))

		out, err := s.orchestrator.DescribeSkill(s.ctx, &planner.DescribeSkillInput{BuildID: testBuildID, SkillID: 2002})
		s.Require().NoError(err)
		s.Equal("30초 동안 공격 속도 증가", out.Tooltip.Detail)
		s.Equal("[현재 레벨: 3]", out.Tooltip.LevelLabel)
		s.Require().Len(out.Tooltip.Requirements, 1)
		s.Equal("소드 마스터리 5레벨 이상", out.Tooltip.Requirements[0].Text)
	})

	s.Run("preview at master", func() {
		s.expectOpen(s.storedBuild(120, nil))

		out, err := s.orchestrator.DescribeSkill(s.ctx, &planner.DescribeSkillInput{BuildID: testBuildID, SkillID: 2002})
		s.Require().NoError(err)
		s.True(out.Tooltip.Preview)
		s.Equal("200초 동안 공격 속도 증가", out.Tooltip.Detail)
	})

	s.Run("explicit level", func() {
		s.expectOpen(s.storedBuild(120, nil))

		out, err := s.orchestrator.DescribeSkill(s.ctx, &planner.DescribeSkillInput{BuildID: testBuildID, SkillID: 2002, Level: 3})
		s.Require().NoError(err)
		s.Equal("30초 동안 공격 속도 증가", out.Tooltip.Detail)
	})

	s.Run("unknown skill", func() {
		s.expectOpen(s.storedBuild(120, nil))

		_, err := s.orchestrator.DescribeSkill(s.ctx, &planner.DescribeSkillInput{BuildID: testBuildID, SkillID: 42})
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestDeleteBuild() {
	s.mockRepo.EXPECT().Delete(s.ctx, buildsrepo.DeleteInput{ID: testBuildID}).Return(&buildsrepo.DeleteOutput{}, nil)

	_, err := s.orchestrator.DeleteBuild(s.ctx, &planner.DeleteBuildInput{BuildID: testBuildID})
	s.Require().NoError(err)
	s.Require().Len(s.published, 1)
	s.Equal(orchestrator.EventBuildDeleted, s.published[0].Type())

	_, err = s.orchestrator.DeleteBuild(s.ctx, &planner.DeleteBuildInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSubscriberFailureDoesNotFailRequest() {
	s.bus.SubscribeFunc(orchestrator.EventBuildReset, 10, func(_ context.Context, _ events.Event) error {
		return errors.Internal("listener broke")
	})
	s.expectOpen(s.storedBuild(30, nil))
	s.expectSave()

	_, err := s.orchestrator.ResetBuild(s.ctx, &planner.ResetBuildInput{BuildID: testBuildID})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestSecondBranchOpensAtThreshold() {
	build := testutils.CreateTestBuildAtStage(testBuildID, s.archetype.ID, testutils.StageSecondOpen)
	s.expectOpen(build)
	saved := s.expectSave()

	out, err := s.orchestrator.Allocate(s.ctx, &planner.AllocateInput{
		BuildID: testBuildID,
		SkillID: 2001,
		Action:  planner.ActionMaster,
	})
	s.Require().NoError(err)

	// only one point was left after the 61 spent in branch 1
	s.True(out.Applied)
	s.Equal(1, saved.Snapshot.Levels[2001])
	s.Equal(0, out.View.Summary.RemainingPoints)
	s.True(out.View.Branches[1].Unlocked)
}

func (s *OrchestratorTestSuite) TestOverBudgetBuildCanOnlyShrink() {
	build := testutils.CreateTestBuildAtStage(testBuildID, s.archetype.ID, testutils.StageOverBudget)

	s.Run("increase rejected", func() {
		s.expectOpen(build)

		out, err := s.orchestrator.Allocate(s.ctx, &planner.AllocateInput{
			BuildID: testBuildID,
			SkillID: 1005,
			Action:  planner.ActionIncrease,
		})
		s.Require().NoError(err)
		s.False(out.Applied)
		s.True(out.View.Summary.OverBudget)
	})

	s.Run("decrease applied", func() {
		s.expectOpen(testutils.CreateTestBuildAtStage(testBuildID, s.archetype.ID, testutils.StageOverBudget))
		saved := s.expectSave()

		out, err := s.orchestrator.Allocate(s.ctx, &planner.AllocateInput{
			BuildID: testBuildID,
			SkillID: 1003,
			Action:  planner.ActionZero,
		})
		s.Require().NoError(err)
		s.True(out.Applied)
		s.Equal(0, saved.Snapshot.Levels[1003])
		s.Equal(-9, out.View.Summary.RemainingPoints)
	})
}
