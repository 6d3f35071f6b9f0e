// Package keys encodes contest results into the composite keys of the
// athlete contests table and back.
//
// Layout, one partition per athlete:
//
//	PK  = ATHLETE#<athleteId>
//	SK  = CONTEST#<yyyy>#<discipline>#<contestId>           (identity, lexical by contest)
//	LSI = CONTEST#<yyyy>#<discipline>#<zero-padded date>#  (secondary, lexical by date)
//
// Both sort keys share the CONTEST#<yyyy>#<discipline># prefix, so one
// begins-with condition scopes either index to an athlete/year/discipline.
package keys

import (
	"fmt"
	"strings"

	"github.com/isa-rankings/rankings/internal/core/category"
)

const (
	AthletePrefix = "ATHLETE#"
	ContestPrefix = "CONTEST#"
	Separator     = "#"

	// Attribute names of the key fields in stored images and change record keys.
	AttrPK  = "PK"
	AttrSK  = "SK"
	AttrLSI = "LSI"

	dateWidth = 12
)

// PK returns the partition key of an athlete.
func PK(athleteID string) string {
	return AthletePrefix + athleteID
}

// SK returns the primary sort key of one contest result.
func SK(year int, discipline category.Discipline, contestID string) string {
	return Prefix(year, discipline) + contestID
}

// LSI returns the secondary sort key; it orders results by contest date
// within the year/discipline prefix.
func LSI(year int, discipline category.Discipline, contestDate int64) string {
	return Prefix(year, discipline) + fmt.Sprintf("%0*d", dateWidth, contestDate) + Separator
}

// Prefix returns the begins-with value shared by SK and LSI. The trailing
// separator keeps "speedline" from matching "speedline_x".
func Prefix(year int, discipline category.Discipline) string {
	return fmt.Sprintf("%s%04d%s%s%s", ContestPrefix, year, Separator, discipline, Separator)
}

// PrefixUpperBound returns the smallest string greater than every string that
// starts with prefix, turning a begins-with filter into a range condition.
func PrefixUpperBound(prefix string) string {
	b := []byte(prefix)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 0xff {
			b[i]++
			return string(b[:i+1])
		}
	}
	return ""
}

// AthleteIDFromPK strips the athlete prefix. ok is false for other entities.
func AthleteIDFromPK(pk string) (string, bool) {
	if !strings.HasPrefix(pk, AthletePrefix) || len(pk) == len(AthletePrefix) {
		return "", false
	}
	return pk[len(AthletePrefix):], true
}

// IsContestKey reports whether a change record's keys belong to an athlete
// contest item. It looks at the key shape only, never at the images.
func IsContestKey(k map[string]string) bool {
	pk, sk := k[AttrPK], k[AttrSK]
	if _, ok := AthleteIDFromPK(pk); !ok {
		return false
	}
	return strings.HasPrefix(sk, ContestPrefix)
}

// ItemKeys returns the key map of a result as carried by change records.
func ItemKeys(athleteID string, year int, discipline category.Discipline, contestID string) map[string]string {
	return map[string]string{
		AttrPK: PK(athleteID),
		AttrSK: SK(year, discipline, contestID),
	}
}
