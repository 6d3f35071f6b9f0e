package category

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrCycle is returned when a hierarchy definition makes a category its own ancestor.
var ErrCycle = errors.New("category hierarchy contains a cycle")

// Hierarchy resolves the ancestors of a category on each of the three axes.
// It is immutable after construction and safe for concurrent use.
type Hierarchy struct {
	disciplines tree[Discipline]
	genders     tree[Gender]
	ages        tree[AgeCategory]
}

// Definition is the parent relation of each axis: category -> direct parents.
// A category may have several parents; listing order is the ancestor order.
type Definition struct {
	Disciplines   map[Discipline][]Discipline   `yaml:"disciplines"`
	Genders       map[Gender][]Gender           `yaml:"genders"`
	AgeCategories map[AgeCategory][]AgeCategory `yaml:"age_categories"`
}

// DefaultDefinition is the federation's built-in classification.
func DefaultDefinition() Definition {
	return Definition{
		Disciplines: map[Discipline][]Discipline{
			DisciplineTrickline:          {DisciplineOverall},
			DisciplineTricklineAerial:    {DisciplineTrickline},
			DisciplineTricklineJibStatic: {DisciplineTrickline},
			DisciplineTricklineTransfer:  {DisciplineTrickline},
			DisciplineSpeedline:          {DisciplineOverall},
			DisciplineSpeedHighline:      {DisciplineSpeedline},
			DisciplineSpeedShort:         {DisciplineSpeedline},
			DisciplineEndurance:          {DisciplineOverall},
			DisciplineBlind:              {DisciplineOverall},
			DisciplineHighline:           {DisciplineOverall},
			DisciplineHighlineFreestyle:  {DisciplineHighline},
			DisciplineOverall:            nil,
		},
		Genders: map[Gender][]Gender{
			GenderMale:   {GenderAny},
			GenderFemale: {GenderAny},
			GenderAny:    nil,
		},
		AgeCategories: map[AgeCategory][]AgeCategory{
			AgeCategoryYouth:  {AgeCategoryAny},
			AgeCategoryJunior: {AgeCategoryAny},
			AgeCategorySenior: {AgeCategoryAny},
			AgeCategoryMaster: {AgeCategoryAny},
			AgeCategoryAny:    nil,
		},
	}
}

// DefaultHierarchy returns the hierarchy built from DefaultDefinition.
func DefaultHierarchy() *Hierarchy {
	h, err := NewHierarchy(DefaultDefinition())
	if err != nil {
		panic(fmt.Sprintf("category: default hierarchy is invalid: %v", err))
	}
	return h
}

// NewHierarchy flattens each axis into its transitive ancestor lists.
func NewHierarchy(def Definition) (*Hierarchy, error) {
	disciplines, err := buildTree(def.Disciplines)
	if err != nil {
		return nil, fmt.Errorf("disciplines: %w", err)
	}
	genders, err := buildTree(def.Genders)
	if err != nil {
		return nil, fmt.Errorf("genders: %w", err)
	}
	ages, err := buildTree(def.AgeCategories)
	if err != nil {
		return nil, fmt.Errorf("age_categories: %w", err)
	}
	return &Hierarchy{disciplines: disciplines, genders: genders, ages: ages}, nil
}

// LoadHierarchyFile reads a YAML Definition from path. An empty path yields
// the default hierarchy.
func LoadHierarchyFile(path string) (*Hierarchy, error) {
	if path == "" {
		return DefaultHierarchy(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hierarchy file %s: %w", path, err)
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing hierarchy file %s: %w", path, err)
	}
	h, err := NewHierarchy(def)
	if err != nil {
		return nil, fmt.Errorf("hierarchy file %s: %w", path, err)
	}
	return h, nil
}

// AncestorsOfDiscipline returns the broader disciplines d rolls up into,
// nearest first, excluding d. Unknown disciplines have no ancestors.
func (h *Hierarchy) AncestorsOfDiscipline(d Discipline) []Discipline {
	return h.disciplines.ancestorsOf(d)
}

// AncestorsOfGender returns the broader gender classes of g, excluding g.
func (h *Hierarchy) AncestorsOfGender(g Gender) []Gender {
	return h.genders.ancestorsOf(g)
}

// AncestorsOfAgeCategory returns the broader age classes of a, excluding a.
func (h *Hierarchy) AncestorsOfAgeCategory(a AgeCategory) []AgeCategory {
	return h.ages.ancestorsOf(a)
}

// KnownDiscipline reports whether d appears anywhere in the hierarchy.
func (h *Hierarchy) KnownDiscipline(d Discipline) bool { return h.disciplines.known(d) }

// KnownGender reports whether g appears anywhere in the hierarchy.
func (h *Hierarchy) KnownGender(g Gender) bool { return h.genders.known(g) }

// KnownAgeCategory reports whether a appears anywhere in the hierarchy.
func (h *Hierarchy) KnownAgeCategory(a AgeCategory) bool { return h.ages.known(a) }

type tree[C ~string] struct {
	ancestors map[C][]C
}

// buildTree precomputes every node's ancestors breadth-first so that lookups
// on the aggregation path are a single map read.
func buildTree[C ~string](parents map[C][]C) (tree[C], error) {
	t := tree[C]{ancestors: make(map[C][]C, len(parents))}
	for node, direct := range parents {
		if node == "" {
			return tree[C]{}, fmt.Errorf("empty category name")
		}
		for _, p := range direct {
			if p == "" {
				return tree[C]{}, fmt.Errorf("category %q has an empty parent", node)
			}
		}
	}

	for node := range parents {
		var (
			out   []C
			seen  = map[C]bool{}
			queue = append([]C(nil), parents[node]...)
		)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if cur == node {
				return tree[C]{}, fmt.Errorf("%w: %q", ErrCycle, node)
			}
			if seen[cur] {
				continue
			}
			seen[cur] = true
			out = append(out, cur)
			queue = append(queue, parents[cur]...)
		}
		t.ancestors[node] = out
	}

	// Parents that are never declared as nodes are implicit roots.
	for _, direct := range parents {
		for _, p := range direct {
			if _, ok := t.ancestors[p]; !ok {
				t.ancestors[p] = nil
			}
		}
	}
	return t, nil
}

func (t tree[C]) ancestorsOf(c C) []C {
	return t.ancestors[c]
}

func (t tree[C]) known(c C) bool {
	_, ok := t.ancestors[c]
	return ok
}
