package databases_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rousseauplant/plant-cover-api/config"
	"github.com/rousseauplant/plant-cover-api/databases"
	"github.com/rousseauplant/plant-cover-api/databases/mocks"
	"github.com/rousseauplant/plant-cover-api/models"
)

func TestNewCoverDatabase(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := config.New()

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	coverDB := databases.NewCoverDatabase(db)

	assert.NotEmpty(t, coverDB)
}

func TestCoverDatabase_FindOne(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Cover)
		(*arg).PlantName = "monstera"
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": true}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": false}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "covers").Return(collectionHelper)

	// Create new database with mocked Database interface
	coverDba := databases.NewCoverDatabase(dbHelper)

	// Call method with defined filter, that in our mocked function returns
	// mocked-error
	cover, err := coverDba.FindOne(context.Background(), bson.M{"error": true})

	assert.Empty(t, cover)
	assert.EqualError(t, err, "mocked-error")

	// Now call the same function with different filter for the correct
	// result
	cover, err = coverDba.FindOne(context.Background(), bson.M{"error": false})

	assert.Equal(t, &models.Cover{PlantName: "monstera"}, cover)
	assert.NoError(t, err)
}

func TestCoverDatabase_Find(t *testing.T) {
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
		arg := args.Get(0).(*[]models.Cover)
		*arg = append(*arg, models.Cover{PlantName: "pothos"})
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"error": true}).
		Return(curHelperErr, nil)

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"error": false}).
		Return(curHelperCorrect, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "covers").Return(collectionHelper)

	coverDba := databases.NewCoverDatabase(dbHelper)

	covers, err := coverDba.Find(context.Background(), bson.M{"error": true})

	assert.Empty(t, covers)
	assert.EqualError(t, err, "mocked-error")

	covers, err = coverDba.Find(context.Background(), bson.M{"error": false})

	assert.Equal(t, []models.Cover{{PlantName: "pothos"}}, covers)
	assert.NoError(t, err)
}

func TestCoverDatabase_FindOneAndUpdate(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Cover)
		(*arg).ReportCount = 2
		(*arg).IsHidden = true
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOneAndUpdate", context.Background(), bson.M{"error": true}, mock.Anything).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOneAndUpdate", context.Background(), bson.M{"error": false}, mock.Anything).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "covers").Return(collectionHelper)

	coverDba := databases.NewCoverDatabase(dbHelper)

	cover, err := coverDba.FindOneAndUpdate(context.Background(), bson.M{"error": true}, bson.M{})

	assert.Empty(t, cover)
	assert.EqualError(t, err, "mocked-error")

	cover, err = coverDba.FindOneAndUpdate(context.Background(), bson.M{"error": false}, bson.M{})

	assert.NoError(t, err)
	assert.True(t, cover.IsHidden)
	assert.Equal(t, 2, cover.ReportCount)
}

func TestCoverDatabase_InsertOne(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("InsertOne", context.Background(), mock.Anything).
		Return("mocked-cover-id", nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "covers").Return(collectionHelper)

	coverDba := databases.NewCoverDatabase(dbHelper)

	id, err := coverDba.InsertOne(context.Background(), models.Cover{PlantName: "ficus"})

	assert.NoError(t, err)
	assert.Equal(t, "mocked-cover-id", id)
}

func TestCoverDatabase_CountDocuments(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("CountDocuments", context.Background(), bson.M{"is_hidden": true}).
		Return(int64(3), nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "covers").Return(collectionHelper)

	coverDba := databases.NewCoverDatabase(dbHelper)

	n, err := coverDba.CountDocuments(context.Background(), bson.M{"is_hidden": true})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
