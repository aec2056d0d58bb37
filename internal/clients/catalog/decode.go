package catalog

import (
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
	"github.com/KirkDiggler/skill-planner/internal/errors"
)

// decodeSkillbook turns a skillbook document into a branch. Level records are
// open-ended so they are walked in document order with gjson instead of being
// bound to a struct.
func decodeSkillbook(raw []byte, index, jobID int) (*skillbook.Branch, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.InvalidArgumentf("skillbook for job %d is not valid JSON", jobID)
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, errors.InvalidArgumentf("skillbook for job %d is not an object", jobID)
	}

	skills := doc.Get("skills")
	if !skills.IsArray() {
		return nil, errors.InvalidArgumentf("skillbook for job %d has no skills list", jobID)
	}

	branch := &skillbook.Branch{
		Index:    index,
		JobID:    jobID,
		BookName: doc.Get("description.bookName").String(),
		JobName:  doc.Get("description.name").String(),
		Icon:     doc.Get("icon").String(),
	}

	var decodeErr error
	skills.ForEach(func(_, value gjson.Result) bool {
		skill, err := decodeSkill(value)
		if err != nil {
			decodeErr = errors.Wrapf(err, "skillbook for job %d", jobID)
			return false
		}
		branch.Skills = append(branch.Skills, skill)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}

	return branch, nil
}

func decodeSkill(value gjson.Result) (*skillbook.Skill, error) {
	id := value.Get("id")
	if id.Type != gjson.Number {
		return nil, errors.InvalidArgument("skill without numeric id")
	}

	skill := &skillbook.Skill{
		ID:              int(id.Int()),
		MasterLevel:     int(value.Get("masterLevel").Int()),
		Name:            value.Get("description.name").String(),
		LongDescription: value.Get("description.desc").String(),
		DetailTemplate:  value.Get("description.detail").String(),
		Icon:            value.Get("icon").String(),
		IconMouseover:   value.Get("iconMouseover").String(),
	}
	if skill.MasterLevel < 0 {
		return nil, errors.InvalidArgumentf("skill %d has negative master level", skill.ID)
	}

	value.Get("weapons").ForEach(func(_, w gjson.Result) bool {
		skill.Weapons = append(skill.Weapons, w.String())
		return true
	})

	var reqErr error
	value.Get("requiredSkillLevels").ForEach(func(key, level gjson.Result) bool {
		reqID, err := strconv.Atoi(key.String())
		if err != nil {
			reqErr = errors.InvalidArgumentf("skill %d has non-numeric requirement %q", skill.ID, key.String())
			return false
		}
		if skill.RequiredSkills == nil {
			skill.RequiredSkills = make(map[int]int)
		}
		skill.RequiredSkills[reqID] = int(level.Int())
		return true
	})
	if reqErr != nil {
		return nil, reqErr
	}

	value.Get("levelProperties").ForEach(func(_, record gjson.Result) bool {
		props := skillbook.LevelProperties{Tag: record.Get("hs").String()}
		record.ForEach(func(key, attr gjson.Result) bool {
			if key.String() == "hs" {
				return true
			}
			props.Attributes = append(props.Attributes, skillbook.Attribute{
				Key:   key.String(),
				Value: attributeText(attr),
			})
			return true
		})
		skill.LevelProperties = append(skill.LevelProperties, props)
		return true
	})

	return skill, nil
}

// attributeText keeps numbers in their document spelling
func attributeText(v gjson.Result) string {
	switch v.Type {
	case gjson.Number:
		return v.Raw
	default:
		return v.String()
	}
}
