package category

// Expand returns every combination the triple (d, g, a) contributes to: the
// cartesian product of each axis value with its ancestors. Combinations with
// an absent component are dropped, so an absent input yields no combinations.
func (h *Hierarchy) Expand(d Discipline, g Gender, a AgeCategory) []Combination {
	return Product(
		withSelf(d, h.AncestorsOfDiscipline(d)),
		withSelf(g, h.AncestorsOfGender(g)),
		withSelf(a, h.AncestorsOfAgeCategory(a)),
	)
}

// Product computes the cartesian product of the three axis lists, skipping
// incomplete triples. Each input list is expected to hold distinct values.
func Product(disciplines []Discipline, genders []Gender, ages []AgeCategory) []Combination {
	out := make([]Combination, 0, len(disciplines)*len(genders)*len(ages))
	for _, d := range disciplines {
		for _, g := range genders {
			for _, a := range ages {
				c := Combination{Discipline: d, Gender: g, AgeCategory: a}
				if !c.Complete() {
					continue
				}
				out = append(out, c)
			}
		}
	}
	return out
}

func withSelf[C ~string](self C, ancestors []C) []C {
	out := make([]C, 0, len(ancestors)+1)
	out = append(out, self)
	return append(out, ancestors...)
}
