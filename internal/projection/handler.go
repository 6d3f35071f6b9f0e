package projection

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/isa-rankings/rankings/internal/core/category"
	httperr "github.com/isa-rankings/rankings/internal/core/errors"
	"github.com/isa-rankings/rankings/internal/core/keys"
)

// RegisterRoutes registers all projection API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/athletes/:athlete_id/contests", s.HandleQueryContests)
	r.GET("/v1/rankings", s.HandleLeaderboard)
	r.GET("/v1/rankings/:athlete_id", s.HandleAthleteRanking)
}

type leaderboardQuery struct {
	Discipline  string `form:"discipline" binding:"required"`
	Gender      string `form:"gender"`
	AgeCategory string `form:"age_category"`
	Year        int    `form:"year"`
	Limit       int    `form:"limit"`
}

func (q leaderboardQuery) request() LeaderboardRequest {
	return LeaderboardRequest{
		Discipline:  category.Discipline(q.Discipline),
		Gender:      category.Gender(q.Gender),
		AgeCategory: category.AgeCategory(q.AgeCategory),
		Year:        q.Year,
		Limit:       q.Limit,
	}
}

// HandleQueryContests handles GET /v1/athletes/:athlete_id/contests
// Query parameters: year, discipline, limit, after
func (s *Service) HandleQueryContests(c *gin.Context) {
	var query struct {
		Year       int    `form:"year" binding:"required"`
		Discipline string `form:"discipline" binding:"required"`
		Limit      int    `form:"limit"`
		After      string `form:"after"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidParams(c, err)
		return
	}

	resp, err := s.QueryContests(c.Request.Context(), ContestQueryRequest{
		AthleteID:  c.Param("athlete_id"),
		Year:       query.Year,
		Discipline: category.Discipline(query.Discipline),
		Limit:      query.Limit,
		After:      query.After,
	})
	if err != nil {
		writeQueryError(c, err, "Failed to query contests")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleLeaderboard handles GET /v1/rankings
// Query parameters: discipline, gender, age_category, year, limit
func (s *Service) HandleLeaderboard(c *gin.Context) {
	var query leaderboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidParams(c, err)
		return
	}

	resp, err := s.Leaderboard(c.Request.Context(), query.request())
	if err != nil {
		writeQueryError(c, err, "Failed to list rankings")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleAthleteRanking handles GET /v1/rankings/:athlete_id
// Query parameters: discipline, gender, age_category, year
func (s *Service) HandleAthleteRanking(c *gin.Context) {
	var query leaderboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidParams(c, err)
		return
	}

	row, err := s.AthleteRanking(c.Request.Context(), c.Param("athlete_id"), query.request())
	if err != nil {
		writeQueryError(c, err, "Failed to get ranking")
		return
	}

	c.JSON(http.StatusOK, row)
}

func invalidParams(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidRequestError,
		Message:   "Invalid query parameters",
		Details:   err.Error(),
	})
}

func writeQueryError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrInvalidQuery):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid ranking query",
			Details:   err.Error(),
		})
	case errors.Is(err, keys.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidTokenError,
			Message:   "Invalid continuation token",
			Details:   err.Error(),
		})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpNotFoundError,
			Message:   "Ranking not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   message,
			Details:   err.Error(),
		})
	}
}
