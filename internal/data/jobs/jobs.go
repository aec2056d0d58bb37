// Package jobs holds the static job table: job names, the selectable
// 4th-stage archetypes, their category grouping and their skillbook lines.
package jobs

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/skill-planner/internal/engine/budget"
	"github.com/KirkDiggler/skill-planner/internal/errors"
)

// LineLength is the number of job stages in an archetype's line
const LineLength = 4

//go:embed jobs.yaml
var embeddedTable []byte

// Job is a single job of any stage
type Job struct {
	ID         int    `yaml:"id"`
	Name       string `yaml:"name"`
	KoreanName string `yaml:"korean_name"`
}

// Archetype is a selectable 4th-stage job with its stage 1-4 line
type Archetype struct {
	Job
	Group           string
	BaseUnlockLevel int
	Line            [LineLength]int
}

// Group is a job category such as Warrior or Magician
type Group struct {
	Name            string
	KoreanName      string
	BaseUnlockLevel int
	Archetypes      []*Archetype
}

// Registry answers job lookups. It is immutable after loading.
type Registry struct {
	jobs       map[int]*Job
	archetypes map[int]*Archetype
	selectable []*Archetype
	groups     []*Group
}

type tableFile struct {
	Jobs   []Job       `yaml:"jobs"`
	Groups []groupYAML `yaml:"groups"`
}

type groupYAML struct {
	Name            string          `yaml:"name"`
	KoreanName      string          `yaml:"korean_name"`
	BaseUnlockLevel int             `yaml:"base_unlock_level"`
	Archetypes      []archetypeYAML `yaml:"archetypes"`
}

type archetypeYAML struct {
	ID   int   `yaml:"id"`
	Line []int `yaml:"line"`
}

var defaultRegistry = mustLoad(embeddedTable)

// Default returns the registry built from the embedded job table
func Default() *Registry {
	return defaultRegistry
}

func mustLoad(raw []byte) *Registry {
	r, err := Load(raw)
	if err != nil {
		panic(err)
	}
	return r
}

// Load parses a YAML job table
func Load(raw []byte) (*Registry, error) {
	var f tableFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, "failed to parse job table")
	}

	r := &Registry{
		jobs:       make(map[int]*Job, len(f.Jobs)),
		archetypes: make(map[int]*Archetype),
	}

	for i := range f.Jobs {
		job := f.Jobs[i]
		if _, exists := r.jobs[job.ID]; exists {
			return nil, errors.InvalidArgumentf("duplicate job id %d", job.ID)
		}
		r.jobs[job.ID] = &job
	}

	for _, g := range f.Groups {
		group := &Group{
			Name:            g.Name,
			KoreanName:      g.KoreanName,
			BaseUnlockLevel: g.BaseUnlockLevel,
		}
		if group.BaseUnlockLevel == 0 {
			group.BaseUnlockLevel = budget.BaseUnlockLevelDefault
		}

		for _, a := range g.Archetypes {
			archetype, err := r.buildArchetype(group, a)
			if err != nil {
				return nil, err
			}
			group.Archetypes = append(group.Archetypes, archetype)
			r.archetypes[archetype.ID] = archetype
			r.selectable = append(r.selectable, archetype)
		}
		r.groups = append(r.groups, group)
	}

	return r, nil
}

func (r *Registry) buildArchetype(group *Group, a archetypeYAML) (*Archetype, error) {
	job, ok := r.jobs[a.ID]
	if !ok {
		return nil, errors.InvalidArgumentf("archetype %d is not a known job", a.ID)
	}
	if _, exists := r.archetypes[a.ID]; exists {
		return nil, errors.InvalidArgumentf("archetype %d listed twice", a.ID)
	}
	if len(a.Line) != LineLength {
		return nil, errors.InvalidArgumentf("archetype %d line has %d stages, want %d", a.ID, len(a.Line), LineLength)
	}
	if a.Line[LineLength-1] != a.ID {
		return nil, errors.InvalidArgumentf("archetype %d line must end with itself", a.ID)
	}

	archetype := &Archetype{
		Job:             *job,
		Group:           group.Name,
		BaseUnlockLevel: group.BaseUnlockLevel,
	}
	for i, id := range a.Line {
		if _, ok := r.jobs[id]; !ok {
			return nil, errors.InvalidArgumentf("archetype %d line references unknown job %d", a.ID, id)
		}
		archetype.Line[i] = id
	}
	return archetype, nil
}

// Job returns any job by id
func (r *Registry) Job(id int) (*Job, bool) {
	job, ok := r.jobs[id]
	return job, ok
}

// Get returns a selectable archetype
func (r *Registry) Get(archetypeID int) (*Archetype, error) {
	archetype, ok := r.archetypes[archetypeID]
	if !ok {
		return nil, errors.NotFoundf("archetype %d not found", archetypeID)
	}
	return archetype, nil
}

// Selectable lists the archetypes in display order
func (r *Registry) Selectable() []*Archetype {
	return r.selectable
}

// Groups lists the job categories in display order
func (r *Registry) Groups() []*Group {
	return r.groups
}

// Line returns the skillbook job ids of stages 1 to 4
func (r *Registry) Line(archetypeID int) ([LineLength]int, error) {
	archetype, err := r.Get(archetypeID)
	if err != nil {
		return [LineLength]int{}, err
	}
	return archetype.Line, nil
}

// BaseUnlockLevel returns the character level at which an archetype's
// first skill point is granted
func (r *Registry) BaseUnlockLevel(archetypeID int) (int, error) {
	archetype, err := r.Get(archetypeID)
	if err != nil {
		return 0, err
	}
	return archetype.BaseUnlockLevel, nil
}
