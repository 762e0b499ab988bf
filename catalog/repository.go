// Package catalog is the data-access layer behind every screen. Handlers only
// see the repository interfaces; the in-memory store serves the seed corpus and
// the Mongo store serves the same records from a database.
package catalog

import (
	"context"
	"errors"

	"chefreel/models"
)

var ErrNotFound = errors.New("catalog: record not found")

type ChefRepository interface {
	FindByID(ctx context.Context, id string) (models.Chef, error)
	List(ctx context.Context) ([]models.Chef, error)
}

// VideoRepository lists the base entries of the feed in display order.
type VideoRepository interface {
	List(ctx context.Context) ([]models.VideoEntry, error)
}

type BookingRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.BookingRecord, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (models.User, error)
}

// Store bundles the repositories a running service needs.
type Store struct {
	Chefs    ChefRepository
	Videos   VideoRepository
	Bookings BookingRepository
	Users    UserRepository
}
