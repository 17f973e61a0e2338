package database

import (
	"github.com/sparkred/curatord/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	curator   *models.CuratorModel
	community *models.CommunityModel
	tracking  *models.TrackingModel
	activity  *models.ActivityModel
	rating    *models.RatingModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		curator:   models.NewCurator(db, logger),
		community: models.NewCommunity(db, logger),
		tracking:  models.NewTracking(db, logger),
		activity:  models.NewActivity(db, logger),
		rating:    models.NewRating(db, logger),
	}
}

// Curator returns the curator model repository.
func (r *Repository) Curator() *models.CuratorModel {
	return r.curator
}

// Community returns the community model repository.
func (r *Repository) Community() *models.CommunityModel {
	return r.community
}

// Tracking returns the mention tracking model repository.
func (r *Repository) Tracking() *models.TrackingModel {
	return r.tracking
}

// Activity returns the activity log model repository.
func (r *Repository) Activity() *models.ActivityModel {
	return r.activity
}

// Rating returns the rating model repository.
func (r *Repository) Rating() *models.RatingModel {
	return r.rating
}
