package description

import (
	"strconv"
	"strings"
)

// Skill display names with a postfix transform. Matching is exact on the
// catalog name, so a renamed or localized skill silently falls back to the
// identity transform.
const (
	SkillRush            = "돌진"
	SkillAdvancedCombo   = "어드밴스드 콤보"
	SkillAchilles        = "아킬레스"
	SkillBlocking        = "블로킹"
	SkillMonsterMagnet   = "몬스터 마그넷"
	SkillBerserk         = "버서크"
	SkillBeholdersBuff   = "비홀더스 버프"
	SkillBeholder        = "비홀더"
	SkillHolySymbol      = "홀리 심볼"
	SkillResurrection    = "리저렉션"
	SkillSharpEyes       = "샤프 아이즈"
	SkillDarkSight       = "다크 사이트"
	SkillMesoExplosion   = "메소 익스플로전"
	SkillEnergyCharge    = "에너지 차지"
	SkillTimeLeap        = "타임 리프"
	normalSpeedMarker    = "정상"
	energyChargePadLabel = "물리공격력"
)

// Stats granted by the party buff, in the order they unlock every 5 levels
var beholdersBuffStats = []string{"물리 방어력", "마법 방어력", "명중률", "회피율", "공격력"}

// transform rewrites a single attribute value
type transform func(level int, value string) string

var defaultPostfixes = map[string]PostfixFunc{
	SkillRush: byKey(map[string]transform{
		"rb": arithmetic(divideBy(2)),
		"lt": arithmetic(divideBy(2)),
	}),
	SkillAdvancedCombo: byKey(map[string]transform{
		"damage": arithmetic(add(-120)),
		"x":      arithmetic(add(-5)),
	}),
	SkillAchilles: byKey(map[string]transform{
		// stored as per-mille of damage taken
		"x": arithmetic(func(v float64) float64 { return (1000 - v) / 10 }),
	}),
	SkillBlocking: byKey(map[string]transform{
		"prop": arithmetic(divideBy(10)),
	}),
	SkillMonsterMagnet: byKey(map[string]transform{
		"range": arithmetic(divideBy(2)),
	}),
	SkillBerserk: byKey(map[string]transform{
		"damage": arithmetic(add(100)),
		"x":      arithmetic(add(5)),
	}),
	SkillBeholdersBuff: byKey(map[string]transform{
		"pdd": beholdersBuffStatList,
	}),
	SkillBeholder: byKey(map[string]transform{
		"mastery": arithmetic(multiplyBy(5)),
		"time":    arithmetic(divideBy(60)),
	}),
	SkillHolySymbol: byKey(map[string]transform{
		"x": arithmetic(add(100)),
	}),
	SkillResurrection: byKey(map[string]transform{
		"cooltime": arithmetic(divideBy(60)),
	}),
	SkillSharpEyes: byKey(map[string]transform{
		"y": arithmetic(add(-100)),
	}),
	SkillDarkSight: byKey(map[string]transform{
		"speed": darkSightSpeed,
	}),
	SkillMesoExplosion: byKey(map[string]transform{
		"x": arithmetic(divideBy(10)),
	}),
	SkillEnergyCharge: byKey(map[string]transform{
		"pad": energyChargePad,
	}),
	SkillTimeLeap: byKey(map[string]transform{
		"cooltime": arithmetic(divideBy(60)),
	}),
}

func byKey(rules map[string]transform) PostfixFunc {
	return func(level int, key, value string) string {
		if t, ok := rules[key]; ok {
			return t(level, value)
		}
		return value
	}
}

// arithmetic applies fn to numeric values; anything else passes through
func arithmetic(fn func(float64) float64) transform {
	return func(_ int, value string) string {
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return value
		}
		return strconv.FormatFloat(fn(n), 'f', -1, 64)
	}
}

func add(delta float64) func(float64) float64 {
	return func(v float64) float64 { return v + delta }
}

func divideBy(d float64) func(float64) float64 {
	return func(v float64) float64 { return v / d }
}

func multiplyBy(m float64) func(float64) float64 {
	return func(v float64) float64 { return v * m }
}

// beholdersBuffStatList lists one more stat for every 5 levels, capped at five
func beholdersBuffStatList(level int, _ string) string {
	count := min(max((level-1)/5+1, 1), len(beholdersBuffStats))
	return strings.Join(beholdersBuffStats[:count], ", ")
}

func darkSightSpeed(level int, value string) string {
	if level < 20 {
		return "-" + value
	}
	return normalSpeedMarker
}

func energyChargePad(level int, value string) string {
	if level < 4 {
		return ""
	}
	return energyChargePadLabel + " +" + value + ", "
}
