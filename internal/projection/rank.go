package projection

import v1 "github.com/isa-rankings/rankings/internal/api/v1"

// assignRanks numbers rows already ordered by points descending using
// standard competition ranking: equal points share a rank and the next rank
// skips the tied positions (1, 2, 2, 4).
func assignRanks(rows []v1.AthleteRanking) []RankedEntry {
	entries := make([]RankedEntry, 0, len(rows))
	for i, row := range rows {
		rank := i + 1
		if i > 0 && row.Points == rows[i-1].Points {
			rank = entries[i-1].Rank
		}
		entries = append(entries, RankedEntry{Rank: rank, AthleteRanking: row})
	}
	return entries
}
