package skillbook

// BranchCount is the number of progression stages of every archetype.
const BranchCount = 4

// Branch is one progression stage's skillbook.
type Branch struct {
	// Index is the 1-based stage number
	Index    int
	JobID    int
	BookName string
	JobName  string
	Icon     string
	Skills   []*Skill
}

// Archetype is a complete four-stage build line with its loaded catalog.
// A nil branch slot means that stage's skillbook could not be loaded.
type Archetype struct {
	ID              int
	Name            string
	KoreanName      string
	BaseUnlockLevel int
	Branches        [BranchCount]*Branch

	// BranchErrors holds the load failure for each unavailable branch
	BranchErrors [BranchCount]string
}

// Branch returns the branch for a 1-based index, or nil when the index is
// out of range or the branch is unavailable
func (a *Archetype) Branch(index int) *Branch {
	if index < 1 || index > BranchCount {
		return nil
	}
	return a.Branches[index-1]
}

// BranchAvailable reports whether the stage's skillbook was loaded
func (a *Archetype) BranchAvailable(index int) bool {
	return a.Branch(index) != nil
}

// Skill finds a skill across all available branches
func (a *Archetype) Skill(id int) (*Skill, int, bool) {
	for i, branch := range a.Branches {
		if branch == nil {
			continue
		}
		for _, skill := range branch.Skills {
			if skill.ID == id {
				return skill, i + 1, true
			}
		}
	}
	return nil, 0, false
}

// SkillName returns a skill's display name for prerequisite lookups
func (a *Archetype) SkillName(id int) (string, bool) {
	skill, _, ok := a.Skill(id)
	if !ok {
		return "", false
	}
	return skill.Name, true
}

// Skills returns every skill of the available branches in stage order
func (a *Archetype) Skills() []*Skill {
	var skills []*Skill
	for _, branch := range a.Branches {
		if branch == nil {
			continue
		}
		skills = append(skills, branch.Skills...)
	}
	return skills
}
