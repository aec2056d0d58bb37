package description

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
)

// NameLookup resolves skill ids to display names, typically an archetype
type NameLookup interface {
	SkillName(id int) (string, bool)
}

// Requirement is one rendered prerequisite line
type Requirement struct {
	SkillID int
	Name    string
	Level   int
	Text    string
}

// Tooltip is everything shown when hovering a skill
type Tooltip struct {
	SkillID      int
	Name         string
	MasterLevel  int
	MasterLabel  string
	Description  string
	Requirements []Requirement
	// Level is the level the detail was rendered at; Preview is set when
	// the skill has no points and the master level is shown instead.
	Level      int
	Preview    bool
	LevelLabel string
	Detail     string
}

// Tooltip assembles the hover content for skill at the given invested level
func (r *Renderer) Tooltip(skill *skillbook.Skill, lookup NameLookup, level int) *Tooltip {
	if skill == nil {
		return &Tooltip{
			Name:        FallbackName,
			Description: FallbackDescription,
			Detail:      FallbackDetail,
		}
	}

	t := &Tooltip{
		SkillID:     skill.ID,
		Name:        skill.Name,
		MasterLevel: skill.MasterLevel,
		MasterLabel: fmt.Sprintf("[마스터 레벨 : %d]", skill.MasterLevel),
		Description: expandNewlines(skill.LongDescription),
		Level:       level,
	}
	if strings.TrimSpace(t.Name) == "" {
		t.Name = FallbackName
	}
	if strings.TrimSpace(t.Description) == "" {
		t.Description = FallbackDescription
	}

	if level < 1 {
		t.Level = skill.MasterLevel
		t.Preview = true
		t.LevelLabel = fmt.Sprintf("[마스터 레벨: %d]", skill.MasterLevel)
	} else {
		t.LevelLabel = fmt.Sprintf("[현재 레벨: %d]", level)
	}

	t.Detail = expandNewlines(r.Render(skill, level))
	t.Requirements = requirements(skill, lookup)

	return t
}

func requirements(skill *skillbook.Skill, lookup NameLookup) []Requirement {
	if len(skill.RequiredSkills) == 0 {
		return nil
	}

	ids := make([]int, 0, len(skill.RequiredSkills))
	for id := range skill.RequiredSkills {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]Requirement, 0, len(ids))
	for _, id := range ids {
		req := Requirement{SkillID: id, Level: skill.RequiredSkills[id]}
		if lookup != nil {
			if name, ok := lookup.SkillName(id); ok && name != "" {
				req.Name = name
			}
		}
		if req.Name == "" {
			req.Name = fmt.Sprintf("스킬 ID %d", id)
		}
		req.Text = fmt.Sprintf("%s %d레벨 이상", req.Name, req.Level)
		out = append(out, req)
	}
	return out
}

// Catalog text stores line breaks as a literal backslash-n
func expandNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
