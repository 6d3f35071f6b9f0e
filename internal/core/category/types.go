package category

// Discipline is a contest discipline. Leaf disciplines roll up into broader
// groupings through the Hierarchy.
type Discipline string

// Gender is a ranking gender class.
type Gender string

// AgeCategory is a ranking age class.
type AgeCategory string

// The empty string of every axis means "absent": combinations containing it
// are never produced.
const (
	DisciplineOverall            Discipline = "overall"
	DisciplineTrickline          Discipline = "trickline"
	DisciplineTricklineAerial    Discipline = "trickline_aerial"
	DisciplineTricklineJibStatic Discipline = "trickline_jib_static"
	DisciplineTricklineTransfer  Discipline = "trickline_transfer"
	DisciplineSpeedline          Discipline = "speedline"
	DisciplineSpeedHighline      Discipline = "speed_highline"
	DisciplineSpeedShort         Discipline = "speed_short"
	DisciplineEndurance          Discipline = "endurance"
	DisciplineBlind              Discipline = "blind"
	DisciplineHighline           Discipline = "highline"
	DisciplineHighlineFreestyle  Discipline = "highline_freestyle"
)

const (
	GenderAny    Gender = "any"
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

const (
	AgeCategoryAny    AgeCategory = "any"
	AgeCategoryYouth  AgeCategory = "youth"
	AgeCategoryJunior AgeCategory = "junior"
	AgeCategorySenior AgeCategory = "senior"
	AgeCategoryMaster AgeCategory = "master"
)

// Combination is one (discipline, gender, age category) triple for which a
// ranking aggregate is maintained.
type Combination struct {
	Discipline  Discipline
	Gender      Gender
	AgeCategory AgeCategory
}

// Complete reports whether every component is present.
func (c Combination) Complete() bool {
	return c.Discipline != "" && c.Gender != "" && c.AgeCategory != ""
}
