// Copyright 2026 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

package mongo

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coffeeshop/drinks/model"
	"github.com/coffeeshop/drinks/store"
)

const (
	DbDrinksColl   = "drinks"
	DbCountersColl = "counters"

	DbDrinkId     = "_id"
	DbDrinkTitle  = "title"
	DbDrinkRecipe = "recipe"

	DbCounterSeq = "seq"
	// counter document holding the last assigned drink id
	DbCounterDrinks = "drinks"

	DbUniqueTitleIndexName = "uniqueTitle"

	connectTimeout = 10 * time.Second
)

type DataStoreMongoConfig struct {
	// connection string
	ConnectionString string

	// SSL support
	SSL           bool
	SSLSkipVerify bool

	// Overwrites credentials provided in connection string if provided
	Username string
	Password string
}

type DataStoreMongo struct {
	client      *mongo.Client
	automigrate bool
}

func GetDataStoreMongo(config DataStoreMongoConfig) (*DataStoreMongo, error) {
	d, err := NewDataStoreMongo(config)
	if err != nil {
		return nil, errors.Wrap(err, "database connection failed")
	}
	return d, nil
}

func NewDataStoreMongoWithClient(client *mongo.Client) (*DataStoreMongo, error) {
	return &DataStoreMongo{
		client: client,
	}, nil
}

func NewDataStoreMongo(config DataStoreMongoConfig) (*DataStoreMongo, error) {
	clientOptions := mopts.Client()
	mongoURL := config.ConnectionString
	if !strings.Contains(mongoURL, "://") {
		mongoURL = "mongodb://" + mongoURL
	}
	clientOptions.ApplyURI(mongoURL)

	if config.Username != "" {
		credentials := mopts.Credential{
			Username: config.Username,
		}
		if config.Password != "" {
			credentials.Password = config.Password
			credentials.PasswordSet = true
		}
		clientOptions.SetAuth(credentials)
	}

	if config.SSL {
		tlsConfig := &tls.Config{}
		tlsConfig.InsecureSkipVerify = config.SSLSkipVerify
		clientOptions.SetTLSConfig(tlsConfig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mongo client")
	}

	if err = client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to verify mongodb connection")
	}

	return NewDataStoreMongoWithClient(client)
}

// WithAutomigrate enables applying the migrations on Migrate.
func (db *DataStoreMongo) WithAutomigrate() *DataStoreMongo {
	return &DataStoreMongo{
		client:      db.client,
		automigrate: true,
	}
}

func (db *DataStoreMongo) Ping(ctx context.Context) error {
	res := db.client.Database(DbName).RunCommand(ctx, bson.M{"ping": 1})
	return res.Err()
}

func (db *DataStoreMongo) GetDrinks(ctx context.Context) ([]model.Drink, error) {
	c := db.client.Database(DbName).Collection(DbDrinksColl)

	findOpts := mopts.Find().
		SetSort(bson.D{{Key: DbDrinkId, Value: 1}})
	cur, err := c.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch drinks")
	}

	drinks := []model.Drink{}
	if err := cur.All(ctx, &drinks); err != nil {
		return nil, errors.Wrap(err, "failed to decode drinks")
	}

	return drinks, nil
}

func (db *DataStoreMongo) GetDrinkByID(ctx context.Context, id int64) (*model.Drink, error) {
	c := db.client.Database(DbName).Collection(DbDrinksColl)

	var drink model.Drink
	err := c.FindOne(ctx, bson.M{DbDrinkId: id}).Decode(&drink)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to fetch drink")
	}

	return &drink, nil
}

func (db *DataStoreMongo) nextDrinkID(ctx context.Context) (int64, error) {
	c := db.client.Database(DbName).Collection(DbCountersColl)

	opts := mopts.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(mopts.After)
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := c.FindOneAndUpdate(ctx,
		bson.M{"_id": DbCounterDrinks},
		bson.M{"$inc": bson.M{DbCounterSeq: int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, errors.Wrap(err, "failed to allocate drink id")
	}
	return counter.Seq, nil
}

func (db *DataStoreMongo) CreateDrink(ctx context.Context, d *model.Drink) error {
	id, err := db.nextDrinkID(ctx)
	if err != nil {
		return err
	}

	c := db.client.Database(DbName).Collection(DbDrinksColl)

	drink := *d
	drink.ID = id
	if _, err := c.InsertOne(ctx, drink); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrDuplicateTitle
		}
		return errors.Wrap(err, "failed to insert drink")
	}

	d.ID = id
	return nil
}

func (db *DataStoreMongo) UpdateDrink(ctx context.Context, d *model.Drink) error {
	c := db.client.Database(DbName).Collection(DbDrinksColl)

	update := bson.M{
		"$set": bson.M{
			DbDrinkTitle:  d.Title,
			DbDrinkRecipe: d.Recipe,
		},
	}
	res, err := c.UpdateOne(ctx, bson.M{DbDrinkId: d.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrDuplicateTitle
		}
		return errors.Wrap(err, "failed to update drink")
	}
	if res.MatchedCount == 0 {
		return store.ErrDrinkNotFound
	}

	return nil
}

func (db *DataStoreMongo) DeleteDrink(ctx context.Context, id int64) error {
	c := db.client.Database(DbName).Collection(DbDrinksColl)

	res, err := c.DeleteOne(ctx, bson.M{DbDrinkId: id})
	if err != nil {
		return errors.Wrap(err, "failed to remove drink")
	}
	if res.DeletedCount == 0 {
		return store.ErrDrinkNotFound
	}

	return nil
}

// DropDatabase removes all the drinks together with the id counter and
// the migration history.
func (db *DataStoreMongo) DropDatabase(ctx context.Context) error {
	err := db.client.Database(DbName).Drop(ctx)
	return errors.Wrap(err, "failed to drop database")
}
