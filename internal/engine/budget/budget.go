// Package budget converts character levels into skill point budgets and
// branch unlock thresholds.
package budget

// Base unlock levels: the level at which an archetype's first stage opens.
const (
	BaseUnlockLevelDefault  = 10
	BaseUnlockLevelMagician = 8
)

// Milestone levels for the 2nd, 3rd and 4th stage
const (
	SecondStageLevel = 30
	ThirdStageLevel  = 70
	FourthStageLevel = 120
)

// MaxCharacterLevel is the highest level the planner accepts as input
const MaxCharacterLevel = 300

// PointsPerLevel is the flat accrual for every level past the base unlock level
const PointsPerLevel = 3

// Mode selects how the budget is computed
type Mode int

const (
	// ModeFull counts every stage with its transition bonuses
	ModeFull Mode = iota
	// ModeFourthOnly counts only points earned past level 119
	ModeFourthOnly
)

// String returns a readable mode name
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeFourthOnly:
		return "fourth_only"
	default:
		return "unknown"
	}
}

// TotalPoints returns the skill points available at characterLevel.
// Every stage transition level grants bonus points on top of the flat accrual.
func TotalPoints(characterLevel, baseUnlockLevel int) int {
	points := (characterLevel - baseUnlockLevel) * PointsPerLevel

	if characterLevel >= baseUnlockLevel {
		points++
	}
	if characterLevel >= SecondStageLevel {
		points++
	}
	if characterLevel >= ThirdStageLevel {
		points++
	}
	if characterLevel >= FourthStageLevel {
		points += 3
	}

	return max(points, 0)
}

// FourthStagePoints returns the points earned purely by leveling past 119
func FourthStagePoints(characterLevel int) int {
	return max((characterLevel-(FourthStageLevel-1))*PointsPerLevel, 0)
}

// Total dispatches on mode
func Total(characterLevel, baseUnlockLevel int, mode Mode) int {
	if mode == ModeFourthOnly {
		return FourthStagePoints(characterLevel)
	}
	return TotalPoints(characterLevel, baseUnlockLevel)
}

// BranchUnlockThreshold returns the points that must be committed outside
// branch before its skills accept points. Unknown branch indexes are treated
// as always unlocked.
func BranchUnlockThreshold(branch, baseUnlockLevel int) int {
	milestone, ok := milestoneLevel(branch)
	if !ok {
		return 0
	}
	return (milestone-baseUnlockLevel)*PointsPerLevel + (branch - 1)
}

func milestoneLevel(branch int) (int, bool) {
	switch branch {
	case 2:
		return SecondStageLevel, true
	case 3:
		return ThirdStageLevel, true
	case 4:
		return FourthStageLevel, true
	default:
		return 0, false
	}
}
