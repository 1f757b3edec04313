package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rousseauplant/plant-cover-api/databases"
	"github.com/rousseauplant/plant-cover-api/databases/mocks"
	"github.com/rousseauplant/plant-cover-api/models"
)

func TestNewReportDatabase(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}

	reportDB := databases.NewReportDatabase(dbHelper)

	assert.NotEmpty(t, reportDB)
}

func TestReportDatabase_Find(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var curHelperErr databases.CursorHelper
	var curHelperCorrect databases.CursorHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	curHelperErr = &mocks.CursorHelper{}
	curHelperCorrect = &mocks.CursorHelper{}

	curHelperErr.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	curHelperCorrect.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Report)
		*arg = append(*arg, models.Report{CoverID: "mocked-cover", Reason: "User reported"})
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"error": true}).
		Return(curHelperErr, nil)

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"error": false}).
		Return(curHelperCorrect, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "reports").Return(collectionHelper)

	reportDba := databases.NewReportDatabase(dbHelper)

	reports, err := reportDba.Find(context.Background(), bson.M{"error": true})

	assert.Empty(t, reports)
	assert.EqualError(t, err, "mocked-error")

	reports, err = reportDba.Find(context.Background(), bson.M{"error": false})

	assert.NoError(t, err)
	assert.Equal(t, []models.Report{{CoverID: "mocked-cover", Reason: "User reported"}}, reports)
}

func TestReportDatabase_InsertOne(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("InsertOne", context.Background(), mock.Anything).
		Return("mocked-report-id", nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "reports").Return(collectionHelper)

	reportDba := databases.NewReportDatabase(dbHelper)

	id, err := reportDba.InsertOne(context.Background(), models.Report{CoverID: "mocked-cover"})

	assert.NoError(t, err)
	assert.Equal(t, "mocked-report-id", id)
}

func TestReportDatabase_CountDocuments(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("CountDocuments", context.Background(), bson.M{}).
		Return(int64(7), nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "reports").Return(collectionHelper)

	reportDba := databases.NewReportDatabase(dbHelper)

	n, err := reportDba.CountDocuments(context.Background(), bson.M{})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), n)
}
