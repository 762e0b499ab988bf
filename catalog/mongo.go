package catalog

import (
	"context"
	"errors"
	"fmt"

	"chefreel/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	chefsCollection    = "chefs"
	videosCollection   = "videos"
	bookingsCollection = "bookings"
	usersCollection    = "users"
)

// Mongo serves catalog records from a MongoDB database. Every document is
// keyed by its "id" field.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) Store() Store {
	return Store{
		Chefs:    mongoChefs{m},
		Videos:   mongoVideos{m},
		Bookings: mongoBookings{m},
		Users:    mongoUsers{m},
	}
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, id string) (T, error) {
	var out T
	err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return out, fmt.Errorf("%s %q: %w", coll.Name(), id, ErrNotFound)
	}
	if err != nil {
		return out, fmt.Errorf("find %s %q: %w", coll.Name(), id, err)
	}
	return out, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

type mongoChefs struct{ m *Mongo }

func (r mongoChefs) FindByID(ctx context.Context, id string) (models.Chef, error) {
	return findOne[models.Chef](ctx, r.m.db.Collection(chefsCollection), id)
}

func (r mongoChefs) List(ctx context.Context) ([]models.Chef, error) {
	return findAll[models.Chef](ctx, r.m.db.Collection(chefsCollection), bson.M{})
}

type mongoVideos struct{ m *Mongo }

func (r mongoVideos) List(ctx context.Context) ([]models.VideoEntry, error) {
	return findAll[models.VideoEntry](ctx, r.m.db.Collection(videosCollection), bson.M{})
}

type mongoBookings struct{ m *Mongo }

func (r mongoBookings) ListByUser(ctx context.Context, userID string) ([]models.BookingRecord, error) {
	return findAll[models.BookingRecord](ctx, r.m.db.Collection(bookingsCollection), bson.M{"userId": userID})
}

type mongoUsers struct{ m *Mongo }

func (r mongoUsers) FindByID(ctx context.Context, id string) (models.User, error) {
	return findOne[models.User](ctx, r.m.db.Collection(usersCollection), id)
}

// SeedMongo upserts every seed record by id and returns how many documents were written.
func SeedMongo(ctx context.Context, db *mongo.Database, data SeedData) (int, error) {
	upsert := options.Replace().SetUpsert(true)
	n := 0
	write := func(coll string, id string, doc any) error {
		if _, err := db.Collection(coll).ReplaceOne(ctx, bson.M{"id": id}, doc, upsert); err != nil {
			return fmt.Errorf("seed %s %q: %w", coll, id, err)
		}
		n++
		return nil
	}

	for _, c := range data.Chefs {
		if err := write(chefsCollection, c.ID, c); err != nil {
			return n, err
		}
	}
	for _, v := range data.Videos {
		if err := write(videosCollection, v.ID, v); err != nil {
			return n, err
		}
	}
	for _, b := range data.Bookings {
		if err := write(bookingsCollection, b.ID, b); err != nil {
			return n, err
		}
	}
	for _, u := range data.Users {
		if err := write(usersCollection, u.ID, u); err != nil {
			return n, err
		}
	}
	return n, nil
}
