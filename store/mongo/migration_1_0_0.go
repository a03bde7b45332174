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

	"github.com/mendersoftware/go-lib-micro/mongo/migrate"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"
)

type migration_1_0_0 struct {
	ds  *DataStoreMongo
	ctx context.Context
}

// Up creates the unique title index.
func (m *migration_1_0_0) Up(from migrate.Version) error {
	coll := m.ds.client.Database(DbName).Collection(DbDrinksColl)

	idxModel := mongo.IndexModel{
		Keys: bson.D{{Key: DbDrinkTitle, Value: 1}},
		Options: mopts.Index().
			SetUnique(true).
			SetName(DbUniqueTitleIndexName),
	}
	_, err := coll.Indexes().CreateOne(m.ctx, idxModel)
	return err
}

func (m *migration_1_0_0) Version() migrate.Version {
	return migrate.MakeVersion(1, 0, 0)
}
