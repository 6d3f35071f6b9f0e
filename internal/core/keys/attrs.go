package keys

import (
	"encoding/json"
	"errors"
	"fmt"

	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
)

// ErrMalformedItem is returned when stored attributes cannot be mapped back
// to a contest result.
var ErrMalformedItem = errors.New("malformed contest item")

// Attrs is the stored attribute form of a contest result: the key fields plus
// the domain fields. It is also the image shape of change records.
type Attrs struct {
	PK  string `json:"PK"`
	SK  string `json:"SK"`
	LSI string `json:"LSI"`

	AthleteID   string              `json:"athleteId"`
	ContestID   string              `json:"contestId"`
	ContestDate int64               `json:"contestDate"`
	Discipline  category.Discipline `json:"contestDiscipline"`
	Points      int                 `json:"points"`
}

// ToAttrs encodes a result with all of its keys.
func ToAttrs(r v1.ContestResult) Attrs {
	year := r.Year()
	return Attrs{
		PK:          PK(r.AthleteID),
		SK:          SK(year, r.ContestDiscipline, r.ContestID),
		LSI:         LSI(year, r.ContestDiscipline, r.ContestDate),
		AthleteID:   r.AthleteID,
		ContestID:   r.ContestID,
		ContestDate: r.ContestDate,
		Discipline:  r.ContestDiscipline,
		Points:      r.Points,
	}
}

// FromAttrs decodes stored attributes. The athlete falls back to the
// partition key when the attribute is missing.
func FromAttrs(a Attrs) (v1.ContestResult, error) {
	athleteID := a.AthleteID
	if athleteID == "" {
		id, ok := AthleteIDFromPK(a.PK)
		if !ok {
			return v1.ContestResult{}, fmt.Errorf("%w: no athlete id in %q", ErrMalformedItem, a.PK)
		}
		athleteID = id
	}
	if a.ContestID == "" {
		return v1.ContestResult{}, fmt.Errorf("%w: missing contestId", ErrMalformedItem)
	}
	if a.Discipline == "" {
		return v1.ContestResult{}, fmt.Errorf("%w: missing contestDiscipline", ErrMalformedItem)
	}
	return v1.ContestResult{
		AthleteID:         athleteID,
		ContestID:         a.ContestID,
		ContestDate:       a.ContestDate,
		ContestDiscipline: a.Discipline,
		Points:            a.Points,
	}, nil
}

// MarshalImage encodes a result as a change record image.
func MarshalImage(r v1.ContestResult) (json.RawMessage, error) {
	data, err := json.Marshal(ToAttrs(r))
	if err != nil {
		return nil, fmt.Errorf("marshal contest image: %w", err)
	}
	return data, nil
}

// UnmarshalImage decodes a change record image into a result.
func UnmarshalImage(img json.RawMessage) (v1.ContestResult, error) {
	if len(img) == 0 {
		return v1.ContestResult{}, fmt.Errorf("%w: empty image", ErrMalformedItem)
	}
	var a Attrs
	if err := json.Unmarshal(img, &a); err != nil {
		return v1.ContestResult{}, fmt.Errorf("%w: %v", ErrMalformedItem, err)
	}
	return FromAttrs(a)
}
