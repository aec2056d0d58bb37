package v1alpha1

// Catalog messages

// ArchetypeSummary describes a selectable archetype and its skillbook line
type ArchetypeSummary struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	KoreanName string `json:"koreanName"`
	Line       []int  `json:"line"`
}

// ArchetypeGroup is a job category
type ArchetypeGroup struct {
	Name            string              `json:"name"`
	KoreanName      string              `json:"koreanName"`
	BaseUnlockLevel int                 `json:"baseUnlockLevel"`
	Archetypes      []*ArchetypeSummary `json:"archetypes"`
}

// Skill is a catalog skill definition
type Skill struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	MasterLevel    int         `json:"masterLevel"`
	Description    string      `json:"description,omitempty"`
	RequiredSkills map[int]int `json:"requiredSkills,omitempty"`
	Icon           string      `json:"icon,omitempty"`
}

// Branch is one stage's skillbook. Error is set when Available is false.
type Branch struct {
	Index     int      `json:"index"`
	JobID     int      `json:"jobId,omitempty"`
	BookName  string   `json:"bookName,omitempty"`
	JobName   string   `json:"jobName,omitempty"`
	Available bool     `json:"available"`
	Error     string   `json:"error,omitempty"`
	Skills    []*Skill `json:"skills,omitempty"`
}

// Archetype is the full four-stage catalog of an archetype
type Archetype struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	KoreanName      string    `json:"koreanName,omitempty"`
	BaseUnlockLevel int       `json:"baseUnlockLevel"`
	Branches        []*Branch `json:"branches"`
}

// Build messages

// Snapshot is the flat allocation state clients save and restore
type Snapshot struct {
	CharacterLevel int         `json:"characterLevel"`
	Levels         map[int]int `json:"levels"`
}

// Summary holds the build-wide point counters
type Summary struct {
	CharacterLevel  int  `json:"characterLevel"`
	TotalPoints     int  `json:"totalPoints"`
	UsedPoints      int  `json:"usedPoints"`
	RemainingPoints int  `json:"remainingPoints"`
	OverBudget      bool `json:"overBudget"`
}

// BranchStatus is the unlock state of one stage
type BranchStatus struct {
	Index           int    `json:"index"`
	Available       bool   `json:"available"`
	Unlocked        bool   `json:"unlocked"`
	RequiredPoints  int    `json:"requiredPoints"`
	CommittedPoints int    `json:"committedPoints"`
	InvestedPoints  int    `json:"investedPoints"`
	Error           string `json:"error,omitempty"`
}

// SkillStatus is the allocation state and control availability of a skill
type SkillStatus struct {
	SkillID     int  `json:"skillId"`
	Branch      int  `json:"branch"`
	Level       int  `json:"level"`
	MasterLevel int  `json:"masterLevel"`
	Active      bool `json:"active"`
	CanIncrease bool `json:"canIncrease"`
	CanDecrease bool `json:"canDecrease"`
}

// Build is the current view of a stored build
type Build struct {
	ID          string          `json:"id"`
	ArchetypeID int             `json:"archetypeId"`
	FourthOnly  bool            `json:"fourthOnly"`
	Mode        string          `json:"mode"`
	Snapshot    *Snapshot       `json:"snapshot"`
	Summary     *Summary        `json:"summary"`
	Branches    []*BranchStatus `json:"branches"`
	Skills      []*SkillStatus  `json:"skills"`
	CreatedAt   int64           `json:"createdAt"`
	UpdatedAt   int64           `json:"updatedAt"`
}

// Requirement is one rendered prerequisite line of a tooltip
type Requirement struct {
	SkillID int    `json:"skillId"`
	Name    string `json:"name"`
	Level   int    `json:"level"`
	Text    string `json:"text"`
}

// Tooltip is the hover content of a skill
type Tooltip struct {
	SkillID      int            `json:"skillId"`
	Name         string         `json:"name"`
	MasterLevel  int            `json:"masterLevel"`
	MasterLabel  string         `json:"masterLabel"`
	Description  string         `json:"description"`
	Requirements []*Requirement `json:"requirements,omitempty"`
	Level        int            `json:"level"`
	Preview      bool           `json:"preview"`
	LevelLabel   string         `json:"levelLabel"`
	Detail       string         `json:"detail"`
}

// Requests and responses

type ListArchetypesRequest struct{}

type ListArchetypesResponse struct {
	Groups []*ArchetypeGroup `json:"groups"`
}

type GetArchetypeRequest struct {
	ArchetypeID int `json:"archetypeId"`
}

type GetArchetypeResponse struct {
	Archetype *Archetype `json:"archetype"`
}

type CreateBuildRequest struct {
	ArchetypeID    int       `json:"archetypeId"`
	CharacterLevel int       `json:"characterLevel,omitempty"`
	FourthOnly     bool      `json:"fourthOnly,omitempty"`
	Snapshot       *Snapshot `json:"snapshot,omitempty"`
}

type CreateBuildResponse struct {
	Build *Build `json:"build"`
}

type GetBuildRequest struct {
	BuildID string `json:"buildId"`
}

type GetBuildResponse struct {
	Build *Build `json:"build"`
}

type DeleteBuildRequest struct {
	BuildID string `json:"buildId"`
}

type DeleteBuildResponse struct{}

// AllocateRequest applies Action (increase, decrease, zero or master) to
// one skill
type AllocateRequest struct {
	BuildID string `json:"buildId"`
	SkillID int    `json:"skillId"`
	Action  string `json:"action"`
}

// AllocateResponse reports Applied=false when the rules rejected the action
type AllocateResponse struct {
	Build   *Build `json:"build"`
	Applied bool   `json:"applied"`
}

type ResetBuildRequest struct {
	BuildID string `json:"buildId"`
}

type ResetBuildResponse struct {
	Build *Build `json:"build"`
}

type SetCharacterLevelRequest struct {
	BuildID        string `json:"buildId"`
	CharacterLevel int    `json:"characterLevel"`
}

type SetCharacterLevelResponse struct {
	Build *Build `json:"build"`
}

type SetModeRequest struct {
	BuildID    string `json:"buildId"`
	FourthOnly bool   `json:"fourthOnly"`
}

type SetModeResponse struct {
	Build *Build `json:"build"`
}

// DescribeSkillRequest renders at Level when positive, otherwise at the
// build's invested level
type DescribeSkillRequest struct {
	BuildID string `json:"buildId"`
	SkillID int    `json:"skillId"`
	Level   int    `json:"level,omitempty"`
}

type DescribeSkillResponse struct {
	Tooltip *Tooltip `json:"tooltip"`
}
