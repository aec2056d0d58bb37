// Package description renders level-dependent skill text from skillbook
// templates.
//
// Templates reference level attributes with #key placeholders. Before
// substitution each value passes through a postfix transform chosen by the
// skill's display name; names that are not in the table render unchanged.
package description

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/KirkDiggler/skill-planner/internal/entities/skillbook"
)

// Fallback texts shown when the catalog has nothing to render
const (
	FallbackDetail      = "상세 설명 없음"
	FallbackName        = "알 수 없는 스킬"
	FallbackDescription = "설명 없음"
)

// Attribute keys holding a "Point [ X=<n>, Y=<n> ]" bounding box corner
var pointKeys = map[string]bool{
	"lt": true,
	"rb": true,
}

var pointXPattern = regexp.MustCompile(`X=(-?\d+)`)

// PostfixFunc rewrites one attribute value of one skill at a level
type PostfixFunc func(level int, key, value string) string

// Renderer produces skill detail text. The zero value is not usable; call
// NewRenderer.
type Renderer struct {
	postfixes map[string]PostfixFunc
}

// NewRenderer creates a renderer with the built-in postfix table
func NewRenderer() *Renderer {
	r := &Renderer{postfixes: make(map[string]PostfixFunc, len(defaultPostfixes))}
	for name, fn := range defaultPostfixes {
		r.Register(name, fn)
	}
	return r
}

// Register sets the postfix for a skill display name, replacing any
// existing entry
func (r *Renderer) Register(name string, fn PostfixFunc) {
	r.postfixes[normalizeName(name)] = fn
}

// Postfix returns the transform for a skill name; unknown names get the
// identity transform
func (r *Renderer) Postfix(name string) PostfixFunc {
	if fn, ok := r.postfixes[normalizeName(name)]; ok {
		return fn
	}
	return identity
}

// Render returns the detail text of skill at level. Levels below 1 preview
// the master level.
func (r *Renderer) Render(skill *skillbook.Skill, level int) string {
	if skill == nil {
		return FallbackDetail
	}
	if level < 1 {
		level = skill.MasterLevel
	}
	if skill.DetailTemplate == "" || len(skill.LevelProperties) == 0 {
		return FallbackDetail
	}

	props := skill.PropertiesFor(level)
	if props == nil {
		return FallbackDetail
	}

	postfix := r.Postfix(skill.Name)
	values := make(map[string]string, len(props.Attributes))
	for _, attr := range props.Attributes {
		if attr.Key == "hs" {
			continue
		}
		values[attr.Key] = renderValue(postfix, level, attr.Key, attr.Value)
	}

	detail := substitute(skill.DetailTemplate, values)
	if strings.TrimSpace(detail) == "" {
		return FallbackDetail
	}
	return detail
}

func renderValue(postfix PostfixFunc, level int, key, raw string) string {
	value := raw
	if pointKeys[key] {
		if match := pointXPattern.FindStringSubmatch(value); match != nil {
			value = match[1]
		}
	}

	value = postfix(level, key, value)

	// Descriptions show magnitudes; the template wording carries the sign.
	return strings.TrimPrefix(value, "-")
}

// substitute replaces #key tokens in a single pass. At every '#' the longest
// matching key wins, so "x" never eats the front of "xy", and substituted
// values are never rescanned.
func substitute(template string, values map[string]string) string {
	if len(values) == 0 {
		return template
	}

	var out strings.Builder
	out.Grow(len(template))

	for i := 0; i < len(template); {
		if template[i] != '#' {
			out.WriteByte(template[i])
			i++
			continue
		}

		rest := template[i+1:]
		best := ""
		for key := range values {
			if len(key) > len(best) && strings.HasPrefix(rest, key) {
				best = key
			}
		}
		if best == "" {
			out.WriteByte('#')
			i++
			continue
		}

		out.WriteString(values[best])
		i += 1 + len(best)
	}

	return out.String()
}

func normalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

func identity(_ int, _ string, value string) string {
	return value
}
