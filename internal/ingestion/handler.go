package ingestion

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	v1 "github.com/isa-rankings/rankings/internal/api/v1"
	"github.com/isa-rankings/rankings/internal/core/category"
	httperr "github.com/isa-rankings/rankings/internal/core/errors"
	"github.com/isa-rankings/rankings/internal/core/storage"
)

const (
	msgReadBodyFailed  = "Failed to read request body"
	msgInvalidJSON     = "Invalid JSON body"
	msgPersistFailed   = "Failed to persist change"
	msgDuplicateChange = "Change record already exists"
)

// ingestionError carries the structured HTTP error shape from a helper back to the orchestrator.
// Helpers return this instead of writing to gin.Context directly, keeping them decoupled from HTTP.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// contestBody is the request body of PUT /v1/athletes/:athlete_id/contests/:contest_id.
// The athlete and contest come from the path.
type contestBody struct {
	ContestDate       int64               `json:"contest_date"`
	ContestDiscipline category.Discipline `json:"contest_discipline"`
	Points            int                 `json:"points"`
}

// IngestChangeHandler handles POST /v1/changes: it appends one change record
// to the change log for the ranking consumer. A record whose idempotency key
// is already logged gets 409; producers that repeat an identical change must
// send a distinct event_id for each occurrence.
func (s *Service) IngestChangeHandler(c *gin.Context) {
	var rec v1.ChangeRecord
	size, ierr := s.bindBody(c, &rec)
	if ierr != nil {
		writeError(c, ierr)
		return
	}

	if err := rec.Validate(); err != nil {
		slog.Warn("Change record validation failed", "error", err, "event_id", rec.EventID)
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    err.Error(),
		})
		return
	}
	rec.RecordedAt = s.nowFn()

	slog.Info("Received Change",
		"event_id", rec.EventID,
		"event_name", rec.EventName,
		"keys", rec.Keys,
		"payload_size", size)

	if ierr := s.appendChange(c.Request.Context(), &rec); ierr != nil {
		writeError(c, ierr)
		return
	}

	// Change logged. The ranking consumer picks it up on its next poll.
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted", "event_id": rec.EventID})
}

// PutContestHandler handles PUT /v1/athletes/:athlete_id/contests/:contest_id.
func (s *Service) PutContestHandler(c *gin.Context) {
	var body contestBody
	if _, ierr := s.bindBody(c, &body); ierr != nil {
		writeError(c, ierr)
		return
	}

	result := v1.ContestResult{
		AthleteID:         c.Param("athlete_id"),
		ContestID:         c.Param("contest_id"),
		ContestDate:       body.ContestDate,
		ContestDiscipline: body.ContestDiscipline,
		Points:            body.Points,
	}
	if err := result.Validate(); err != nil {
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequestError,
			message:    err.Error(),
		})
		return
	}
	if ierr := s.checkDiscipline(result.ContestDiscipline); ierr != nil {
		writeError(c, ierr)
		return
	}

	if err := s.contests.Put(c.Request.Context(), result); err != nil {
		writeError(c, persistFailed(err, "Failed to store contest result"))
		return
	}

	slog.Info("Stored contest result",
		"athlete_id", result.AthleteID,
		"contest_id", result.ContestID,
		"year", result.Year(),
		"discipline", result.ContestDiscipline,
		"points", result.Points)

	c.JSON(http.StatusOK, result)
}

// DeleteContestHandler handles DELETE /v1/athletes/:athlete_id/contests/:contest_id?year=&discipline=.
func (s *Service) DeleteContestHandler(c *gin.Context) {
	athleteID, contestID := c.Param("athlete_id"), c.Param("contest_id")
	discipline := category.Discipline(c.Query("discipline"))
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 || discipline == "" {
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequestError,
			message:    "year and discipline query parameters are required",
		})
		return
	}

	if err := s.contests.Delete(c.Request.Context(), athleteID, year, discipline, contestID); err != nil {
		writeError(c, persistFailed(err, "Failed to delete contest result"))
		return
	}

	slog.Info("Deleted contest result",
		"athlete_id", athleteID,
		"contest_id", contestID,
		"year", year,
		"discipline", discipline)

	c.Status(http.StatusNoContent)
}

// PutAthleteHandler handles PUT /v1/athletes/:athlete_id.
func (s *Service) PutAthleteHandler(c *gin.Context) {
	var athlete v1.Athlete
	if _, ierr := s.bindBody(c, &athlete); ierr != nil {
		writeError(c, ierr)
		return
	}
	athlete.ID = c.Param("athlete_id")

	if err := athlete.Validate(); err != nil {
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequestError,
			message:    err.Error(),
		})
		return
	}
	if athlete.Gender != "" && !s.hierarchy.KnownGender(athlete.Gender) {
		writeError(c, unknownCategory("gender", string(athlete.Gender)))
		return
	}
	if athlete.AgeCategory != "" && !s.hierarchy.KnownAgeCategory(athlete.AgeCategory) {
		writeError(c, unknownCategory("age_category", string(athlete.AgeCategory)))
		return
	}

	if err := s.athletes.PutAthlete(c.Request.Context(), athlete); err != nil {
		writeError(c, persistFailed(err, "Failed to store athlete"))
		return
	}

	slog.Info("Stored athlete", "athlete_id", athlete.ID, "gender", athlete.Gender, "age_category", athlete.AgeCategory)
	c.JSON(http.StatusOK, athlete)
}

// bindBody reads the size-limited request body and binds it as JSON into out.
// Returns the raw payload size (used for structured logging upstream).
func (s *Service) bindBody(c *gin.Context, out interface{}) (int, *ingestionError) {
	// Enforce maximum body size to prevent OOM attacks
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return 0, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return len(bodyBytes), &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	if err := c.ShouldBindJSON(out); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return len(bodyBytes), &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}
	return len(bodyBytes), nil
}

func (s *Service) checkDiscipline(d category.Discipline) *ingestionError {
	if s.hierarchy.KnownDiscipline(d) {
		return nil
	}
	return unknownCategory("contest_discipline", string(d))
}

// appendChange saves the record to the change log.
func (s *Service) appendChange(ctx context.Context, rec *v1.ChangeRecord) *ingestionError {
	if err := s.changes.AppendChange(ctx, rec); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			slog.Info("Duplicate change rejected", "event_id", rec.EventID)
			return &ingestionError{
				statusCode: http.StatusConflict,
				errorType:  httperr.HttpDuplicateChangeError,
				message:    msgDuplicateChange,
			}
		}
		return persistFailed(err, msgPersistFailed)
	}
	return nil
}

func persistFailed(err error, message string) *ingestionError {
	var perr *storage.PersistenceError
	if errors.As(err, &perr) {
		slog.Error(message, "op", perr.Op, "params", perr.Params, "error", perr.Err)
	} else {
		slog.Error(message, "error", err)
	}
	return &ingestionError{
		statusCode: http.StatusInternalServerError,
		errorType:  httperr.HttpInternalError,
		message:    message,
	}
}

func unknownCategory(field, value string) *ingestionError {
	return &ingestionError{
		statusCode: http.StatusBadRequest,
		errorType:  httperr.HttpUnknownCategoryError,
		message:    "Unknown " + field,
		details:    map[string]interface{}{field: value},
	}
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
