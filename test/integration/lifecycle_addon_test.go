//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
	"github.com/isa-rankings/rankings/internal/projection"
	"github.com/stretchr/testify/require"
)

func TestCoreAPI_E2ELifecycle_AddOn(t *testing.T) {
	h := startHarnessWithoutConsumer(t)
	defer h.close(t)

	require.NoError(t, resetDatabase(t, h.db))

	athleteID := "ath-lifecycle"
	march := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC).Unix()
	january := time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC).Unix()

	t.Run("health endpoint", func(t *testing.T) {
		resp, err := h.client.Get(h.baseURL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	})

	t.Run("register athlete and contests", func(t *testing.T) {
		putJSON(t, h, "/v1/athletes/"+athleteID, v1.Athlete{
			Name: "Anna", Surname: "Berg", Country: "CH",
			Gender: category.GenderFemale, AgeCategory: category.AgeCategorySenior,
		}, http.StatusOK)

		for i := 1; i <= 3; i++ {
			path := fmt.Sprintf("/v1/athletes/%s/contests/c-%d", athleteID, i)
			putJSON(t, h, path, contestBody(march+int64(i)*86400, category.DisciplineSpeedShort, 10*i), http.StatusOK)
		}
	})

	t.Run("range query pages newest first", func(t *testing.T) {
		first := getContests(t, h, athleteID, 2024, category.DisciplineSpeedShort, 2, "")
		require.Len(t, first.Items, 2)
		require.Equal(t, "c-3", first.Items[0].ContestID)
		require.NotEmpty(t, first.Next)

		second := getContests(t, h, athleteID, 2024, category.DisciplineSpeedShort, 2, first.Next)
		require.Len(t, second.Items, 1)
		require.Equal(t, "c-1", second.Items[0].ContestID)
	})

	t.Run("consumer run credits every combination and checkpoints", func(t *testing.T) {
		require.Equal(t, int64(0), readCheckpoint(t, h.db))
		processed := runConsumerOnce(t, h)
		require.Equal(t, 3, processed)
		require.Equal(t, int64(3), readCheckpoint(t, h.db))

		for _, d := range []category.Discipline{category.DisciplineSpeedShort, category.DisciplineSpeedline, category.DisciplineOverall} {
			row := getAthleteRanking(t, h, athleteID, d, category.GenderFemale, category.AgeCategorySenior, 2024)
			require.Equal(t, int64(60), row.Points, d)
		}
	})

	t.Run("redelivery after checkpoint loss changes nothing", func(t *testing.T) {
		_, err := h.db.Exec(`DELETE FROM stream_checkpoints`)
		require.NoError(t, err)

		require.Equal(t, 3, runConsumerOnce(t, h))
		row := getAthleteRanking(t, h, athleteID, category.DisciplineOverall, category.GenderAny, category.AgeCategoryAny, 2024)
		require.Equal(t, int64(60), row.Points)
	})

	t.Run("moving a contest into the next year moves its points", func(t *testing.T) {
		// Same contest id, new date: the old item lives under 2024, so delete it
		// and write the 2025 one, which is how the write API expresses a move.
		status, body := sendJSON(t, h.client, http.MethodDelete,
			fmt.Sprintf("%s/v1/athletes/%s/contests/c-3?year=2024&discipline=%s", h.baseURL, athleteID, category.DisciplineSpeedShort), nil)
		require.Equal(t, http.StatusNoContent, status, string(body))
		putJSON(t, h, fmt.Sprintf("/v1/athletes/%s/contests/c-3", athleteID),
			contestBody(january, category.DisciplineSpeedShort, 30), http.StatusOK)

		require.Equal(t, 2, runConsumerOnce(t, h))

		row2024 := getAthleteRanking(t, h, athleteID, category.DisciplineOverall, category.GenderAny, category.AgeCategoryAny, 2024)
		require.Equal(t, int64(30), row2024.Points)
		row2025 := getAthleteRanking(t, h, athleteID, category.DisciplineOverall, category.GenderAny, category.AgeCategoryAny, 2025)
		require.Equal(t, int64(30), row2025.Points)
	})

	t.Run("modify applies the difference", func(t *testing.T) {
		putJSON(t, h, fmt.Sprintf("/v1/athletes/%s/contests/c-1", athleteID),
			contestBody(march+86400, category.DisciplineSpeedShort, 25), http.StatusOK)

		require.Equal(t, 1, runConsumerOnce(t, h))
		row := getAthleteRanking(t, h, athleteID, category.DisciplineSpeedShort, category.GenderFemale, category.AgeCategorySenior, 2024)
		require.Equal(t, int64(45), row.Points)
	})
}

func getContests(
	t *testing.T,
	h *integrationHarness,
	athleteID string,
	year int,
	d category.Discipline,
	limit int,
	after string,
) projection.ContestQueryResponse {
	t.Helper()

	endpoint := fmt.Sprintf("%s/v1/athletes/%s/contests?year=%d&discipline=%s&limit=%d", h.baseURL, athleteID, year, d, limit)
	if after != "" {
		endpoint += "&after=" + after
	}
	resp, err := h.client.Get(endpoint)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var page projection.ContestQueryResponse
	require.NoError(t, json.Unmarshal(body, &page))
	return page
}

func getAthleteRanking(
	t *testing.T,
	h *integrationHarness,
	athleteID string,
	d category.Discipline,
	g category.Gender,
	a category.AgeCategory,
	year int,
) v1.AthleteRanking {
	t.Helper()

	endpoint := fmt.Sprintf("%s/v1/rankings/%s?discipline=%s&gender=%s&age_category=%s&year=%d",
		h.baseURL, athleteID, d, g, a, year)
	resp, err := h.client.Get(endpoint)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var row v1.AthleteRanking
	require.NoError(t, json.Unmarshal(body, &row))
	return row
}
