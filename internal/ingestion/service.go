package ingestion

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/isa-rankings/rankings/internal/core/category"
	"github.com/isa-rankings/rankings/internal/core/storage"
)

// Service is the write side of the API: contest results, athlete profiles
// and raw change records all end up in the change log the ranking consumer
// drains.
type Service struct {
	changes          storage.ChangeLog
	contests         storage.ContestStore
	athletes         storage.AthleteWriter
	hierarchy        *category.Hierarchy
	maxBodySizeBytes int
	nowFn            func() time.Time
}

func NewService(
	changes storage.ChangeLog,
	contests storage.ContestStore,
	athletes storage.AthleteWriter,
	hierarchy *category.Hierarchy,
	maxBodySizeMB int,
) *Service {
	if changes == nil {
		panic("ingestion: change log must not be nil")
	}
	if contests == nil {
		panic("ingestion: contest store must not be nil")
	}
	if athletes == nil {
		panic("ingestion: athlete writer must not be nil")
	}
	if hierarchy == nil {
		hierarchy = category.DefaultHierarchy()
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		changes:          changes,
		contests:         contests,
		athletes:         athletes,
		hierarchy:        hierarchy,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		nowFn:            func() time.Time { return time.Now().UTC() },
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/changes", s.IngestChangeHandler)
	r.PUT("/v1/athletes/:athlete_id", s.PutAthleteHandler)
	r.PUT("/v1/athletes/:athlete_id/contests/:contest_id", s.PutContestHandler)
	r.DELETE("/v1/athletes/:athlete_id/contests/:contest_id", s.DeleteContestHandler)
}
