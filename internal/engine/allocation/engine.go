// Package allocation enforces skill point allocation rules for one build.
//
// An Engine owns the invested level of every skill of one archetype. All
// mutations are silent no-ops when illegal: callers are expected to disable
// the matching controls, but stale calls must never corrupt state. Decreases
// ignore branch and prerequisite gating so a build can always be walked back
// to a legal state.
//
// An Engine is not safe for concurrent use; each build owns its own instance.
package allocation

import (
	"github.com/KirkDiggler/skill-planner/internal/engine/budget"
	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
	"github.com/KirkDiggler/skill-planner/internal/errors"
)

// Config holds the inputs for a new Engine
type Config struct {
	Archetype      *skillbook.Archetype
	CharacterLevel int
	Mode           budget.Mode

	// Snapshot optionally restores a saved allocation. Its character level
	// wins over CharacterLevel when set.
	Snapshot *skillbook.Snapshot
}

// Validate ensures the archetype is present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Archetype == nil {
		vb.RequiredField("Archetype")
	} else if c.Archetype.BaseUnlockLevel <= 0 {
		vb.Field("Archetype.BaseUnlockLevel", "must be positive")
	}

	return vb.Build()
}

type entry struct {
	skill  *skillbook.Skill
	branch int
}

// Engine applies allocation rules against one archetype's catalog
type Engine struct {
	archetype      *skillbook.Archetype
	mode           budget.Mode
	characterLevel int

	skills   map[int]entry
	order    []int
	invested map[int]int
	used     int

	// detached holds saved levels for skills of stages that failed to load.
	// They never count toward any rule and are written back by Snapshot.
	detached map[int]int
}

// New creates an engine with every skill at level 0, then applies the
// optional snapshot
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	e := &Engine{
		archetype:      cfg.Archetype,
		mode:           cfg.Mode,
		characterLevel: cfg.CharacterLevel,
		skills:         make(map[int]entry),
		invested:       make(map[int]int),
	}

	for i, branch := range cfg.Archetype.Branches {
		if branch == nil {
			continue
		}
		for _, skill := range branch.Skills {
			if _, dup := e.skills[skill.ID]; dup {
				continue
			}
			e.skills[skill.ID] = entry{skill: skill, branch: i + 1}
			e.order = append(e.order, skill.ID)
			e.invested[skill.ID] = 0
		}
	}

	if cfg.Snapshot != nil {
		e.restore(cfg.Snapshot)
	}

	return e, nil
}

// restore copies known skill levels from a snapshot, clamping each into
// [0, masterLevel]. Unknown ids are dropped when every stage loaded, and
// detached otherwise since they may belong to a missing stage.
func (e *Engine) restore(snapshot *skillbook.Snapshot) {
	if snapshot.CharacterLevel > 0 {
		e.characterLevel = snapshot.CharacterLevel
	}
	partial := e.partialCatalog()
	for id, level := range snapshot.Levels {
		ent, ok := e.skills[id]
		if !ok {
			if partial && level > 0 {
				if e.detached == nil {
					e.detached = make(map[int]int)
				}
				e.detached[id] = level
			}
			continue
		}
		e.invested[id] = min(max(level, 0), ent.skill.MasterLevel)
	}
	e.recount()
}

func (e *Engine) partialCatalog() bool {
	for _, branch := range e.archetype.Branches {
		if branch == nil {
			return true
		}
	}
	return false
}

func (e *Engine) recount() {
	e.used = 0
	for id, level := range e.invested {
		if e.inScope(e.skills[id].branch) {
			e.used += level
		}
	}
}

// inScope reports whether a branch participates in the current mode
func (e *Engine) inScope(branch int) bool {
	if e.mode == budget.ModeFourthOnly {
		return branch == skillbook.BranchCount
	}
	return true
}

// Archetype returns the catalog the engine was built from
func (e *Engine) Archetype() *skillbook.Archetype {
	return e.archetype
}

// Mode returns the budget mode
func (e *Engine) Mode() budget.Mode {
	return e.mode
}

// SetMode switches the budget mode. Investments outside the new scope are
// kept but stop counting toward used points.
func (e *Engine) SetMode(mode budget.Mode) {
	e.mode = mode
	e.recount()
}

// CharacterLevel returns the character level the budget is computed from
func (e *Engine) CharacterLevel() int {
	return e.characterLevel
}

// SetCharacterLevel changes the budget. Existing allocations are never
// clamped; remaining points may go negative.
func (e *Engine) SetCharacterLevel(level int) {
	e.characterLevel = level
}

// TotalPoints returns the budget for the current level and mode
func (e *Engine) TotalPoints() int {
	return budget.Total(e.characterLevel, e.archetype.BaseUnlockLevel, e.mode)
}

// UsedPoints returns the sum of in-scope invested levels
func (e *Engine) UsedPoints() int {
	return e.used
}

// RemainingPoints returns TotalPoints minus UsedPoints. Negative values mean
// the build is over budget.
func (e *Engine) RemainingPoints() int {
	return e.TotalPoints() - e.used
}

// Level returns the invested level of a skill; unknown skills report 0
func (e *Engine) Level(skillID int) int {
	return e.invested[skillID]
}

// BranchPoints returns the points invested in one branch
func (e *Engine) BranchPoints(branch int) int {
	total := 0
	for id, level := range e.invested {
		if e.skills[id].branch == branch {
			total += level
		}
	}
	return total
}

// BranchThreshold returns the unlock threshold of a branch in the current mode
func (e *Engine) BranchThreshold(branch int) int {
	if e.mode == budget.ModeFourthOnly {
		return 0
	}
	return budget.BranchUnlockThreshold(branch, e.archetype.BaseUnlockLevel)
}

// pointsCommittedOutside excludes the branch's own investment so a branch can
// never unlock itself
func (e *Engine) pointsCommittedOutside(branch int) int {
	if !e.inScope(branch) {
		return 0
	}
	return e.used - e.BranchPoints(branch)
}

// IsBranchUnlocked reports whether a branch's skills accept points
func (e *Engine) IsBranchUnlocked(branch int) bool {
	if !e.inScope(branch) {
		return false
	}
	if branch == 1 {
		return true
	}
	return e.pointsCommittedOutside(branch) >= e.BranchThreshold(branch)
}

// ArePrerequisitesSatisfied reports whether every required skill has reached
// its required level. Unknown prerequisite ids count as level 0.
func (e *Engine) ArePrerequisitesSatisfied(skillID int) bool {
	ent, ok := e.skills[skillID]
	if !ok {
		return false
	}
	for reqID, reqLevel := range ent.skill.RequiredSkills {
		if e.invested[reqID] < reqLevel {
			return false
		}
	}
	return true
}

// IsSkillActive reports whether a skill's branch is unlocked and its
// prerequisites are met
func (e *Engine) IsSkillActive(skillID int) bool {
	ent, ok := e.skills[skillID]
	if !ok {
		return false
	}
	return e.IsBranchUnlocked(ent.branch) && e.ArePrerequisitesSatisfied(skillID)
}

// CanIncrease reports whether Increase would apply
func (e *Engine) CanIncrease(skillID int) bool {
	ent, ok := e.skills[skillID]
	if !ok {
		return false
	}
	return e.IsSkillActive(skillID) &&
		e.invested[skillID] < ent.skill.MasterLevel &&
		e.RemainingPoints() > 0
}

// CanDecrease reports whether the skill holds any points. Inactive skills
// can always be decreased.
func (e *Engine) CanDecrease(skillID int) bool {
	return e.invested[skillID] > 0
}

// Increase adds one point to a skill when legal
func (e *Engine) Increase(skillID int) bool {
	if !e.CanIncrease(skillID) {
		return false
	}
	e.set(skillID, e.invested[skillID]+1)
	return true
}

// DecreaseOne removes one point from a skill when it has any
func (e *Engine) DecreaseOne(skillID int) bool {
	if !e.CanDecrease(skillID) {
		return false
	}
	e.set(skillID, e.invested[skillID]-1)
	return true
}

// SetToZero removes every point from a skill when it has any
func (e *Engine) SetToZero(skillID int) bool {
	if !e.CanDecrease(skillID) {
		return false
	}
	e.set(skillID, 0)
	return true
}

// SetToMaster spends as many remaining points as the skill can take, capped
// at its master level
func (e *Engine) SetToMaster(skillID int) bool {
	if !e.CanIncrease(skillID) {
		return false
	}
	master := e.skills[skillID].skill.MasterLevel
	e.set(skillID, min(e.invested[skillID]+e.RemainingPoints(), master))
	return true
}

// ResetAll sets every skill to 0, including detached ones. The character
// level is untouched.
func (e *Engine) ResetAll() {
	for id := range e.invested {
		e.invested[id] = 0
	}
	e.detached = nil
	e.used = 0
}

func (e *Engine) set(skillID, level int) {
	if e.inScope(e.skills[skillID].branch) {
		e.used += level - e.invested[skillID]
	}
	e.invested[skillID] = level
}

// Snapshot returns the serializable allocation state. Every known skill is
// present, including those at level 0, along with any detached levels.
func (e *Engine) Snapshot() skillbook.Snapshot {
	levels := make(map[int]int, len(e.invested)+len(e.detached))
	for id, level := range e.detached {
		levels[id] = level
	}
	for id, level := range e.invested {
		levels[id] = level
	}
	return skillbook.Snapshot{
		CharacterLevel: e.characterLevel,
		Levels:         levels,
	}
}
