package databases

// go generate: mockery --name CoverDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rousseauplant/plant-cover-api/models"
)

const coverName = "covers"

// CoverDatabase contains the methods to use with the cover collection
type CoverDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Cover, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Cover, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) (*models.Cover, error)
	InsertOne(ctx context.Context, cover models.Cover, opts ...*options.InsertOneOptions) (interface{}, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type coverDatabase struct {
	db DatabaseHelper
}

// NewCoverDatabase initializes a new instance of cover database with the provided db connection
func NewCoverDatabase(db DatabaseHelper) CoverDatabase {
	return &coverDatabase{
		db: db,
	}
}

func (c *coverDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Cover, error) {
	cover := &models.Cover{}
	err := c.db.Collection(coverName).FindOne(ctx, filter, opts...).Decode(&cover)
	if err != nil {
		return nil, err
	}
	return cover, nil
}

func (c *coverDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Cover, error) {
	var covers []models.Cover
	cursor, err := c.db.Collection(coverName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cursor.Decode(&covers)
	if err != nil {
		return nil, err
	}
	return covers, nil
}

func (c *coverDatabase) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) (*models.Cover, error) {
	cover := &models.Cover{}
	err := c.db.Collection(coverName).FindOneAndUpdate(ctx, filter, update, opts...).Decode(&cover)
	if err != nil {
		return nil, err
	}
	return cover, nil
}

func (c *coverDatabase) InsertOne(ctx context.Context, cover models.Cover, opts ...*options.InsertOneOptions) (interface{}, error) {
	return c.db.Collection(coverName).InsertOne(ctx, cover, opts...)
}

func (c *coverDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(coverName).CountDocuments(ctx, filter, opts...)
}
