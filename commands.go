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

package main

import (
	"context"

	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/coffeeshop/drinks/drink"
	"github.com/coffeeshop/drinks/model"
	"github.com/coffeeshop/drinks/store"
	"github.com/coffeeshop/drinks/store/mongo"
)

// seedDrinks is the menu a reset database starts with.
func seedDrinks() []model.NewDrink {
	return []model.NewDrink{{
		Title: "water",
		Recipe: &model.Recipe{{
			Name:  "water",
			Color: "blue",
			Parts: 1,
		}},
	}}
}

func commandMigrate(c config.Reader) error {
	l := log.New(log.Ctx{})

	l.Printf("Drinks Service, version %s starting up",
		CreateVersionString())

	l.Printf("migrating the drinks database")

	// we want to apply migrations
	db, err := connectDataStore(c, true)
	if err != nil {
		return err
	}

	err = db.Migrate(context.Background(), mongo.DbVersion)
	if err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	return nil
}

func commandReset(c config.Reader) error {
	l := log.New(log.Ctx{})

	db, err := connectDataStore(c, true)
	if err != nil {
		return err
	}

	return resetDataStore(log.WithContext(context.Background(), l), db)
}

type resettableStore interface {
	store.DataStore
	DropDatabase(ctx context.Context) error
	Migrate(ctx context.Context, version string) error
}

// resetDataStore drops every drink and leaves a migrated database holding
// only the seed menu.
func resetDataStore(ctx context.Context, db resettableStore) error {
	l := log.FromContext(ctx)

	l.Infof("dropping the drinks database")
	if err := db.DropDatabase(ctx); err != nil {
		return err
	}

	if err := db.Migrate(ctx, mongo.DbVersion); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	app := drink.NewDrinks(db)
	for _, nd := range seedDrinks() {
		nd := nd
		d, err := app.CreateDrink(ctx, &nd)
		if err != nil {
			return errors.Wrapf(err, "failed to seed drink %q", nd.Title)
		}
		l.Infof("seeded drink %d: %s", d.ID, d.Title)
	}

	return nil
}
