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

package drink

import (
	"context"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/coffeeshop/drinks/model"
	"github.com/coffeeshop/drinks/store"
)

var (
	ErrDrinkNotFound = errors.New("drink not found")
	ErrUnprocessable = errors.New("unprocessable")
)

// App is the drinks business logic.
//
// Errors are either ErrDrinkNotFound, ErrUnprocessable carrying the
// cause in its message, or an unexpected failure.
type App interface {
	HealthCheck(ctx context.Context) error
	// ListDrinks returns all the drinks ordered by ID
	ListDrinks(ctx context.Context) ([]model.Drink, error)
	// GetDrink returns ErrDrinkNotFound if there is no drink id
	GetDrink(ctx context.Context, id int64) (*model.Drink, error)
	CreateDrink(ctx context.Context, nd *model.NewDrink) (*model.Drink, error)
	// UpdateDrink replaces the provided fields of drink id and returns
	// the stored result
	UpdateDrink(ctx context.Context, id int64, u *model.DrinkUpdate) (*model.Drink, error)
	// DeleteDrink removes drink id and returns what was removed
	DeleteDrink(ctx context.Context, id int64) (*model.Drink, error)
}

type Drinks struct {
	db store.DataStore
}

func NewDrinks(db store.DataStore) *Drinks {
	return &Drinks{
		db: db,
	}
}

func unprocessable(err error) error {
	return errors.WithMessage(ErrUnprocessable, err.Error())
}

func (d *Drinks) HealthCheck(ctx context.Context) error {
	err := d.db.Ping(ctx)
	if err != nil {
		return errors.Wrap(err, "error reaching MongoDB")
	}
	return nil
}

func (d *Drinks) ListDrinks(ctx context.Context) ([]model.Drink, error) {
	drinks, err := d.db.GetDrinks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "drinks: failed to list drinks")
	}
	if drinks == nil {
		drinks = []model.Drink{}
	}
	return drinks, nil
}

func (d *Drinks) CreateDrink(ctx context.Context, nd *model.NewDrink) (*model.Drink, error) {
	if err := nd.Validate(); err != nil {
		return nil, unprocessable(err)
	}

	drink, err := nd.Drink()
	if err != nil {
		return nil, unprocessable(err)
	}

	if err := d.db.CreateDrink(ctx, drink); err != nil {
		return nil, unprocessable(errors.Wrap(err, "drinks: failed to create drink"))
	}

	log.FromContext(ctx).Infof("created drink %d", drink.ID)
	return drink, nil
}

// lookup returns ErrDrinkNotFound if there is no drink id and an
// unprocessable error if the store fails.
func (d *Drinks) lookup(ctx context.Context, id int64) (*model.Drink, error) {
	drink, err := d.db.GetDrinkByID(ctx, id)
	if err != nil {
		return nil, unprocessable(errors.Wrap(err, "drinks: failed to get drink"))
	}
	if drink == nil {
		return nil, ErrDrinkNotFound
	}
	return drink, nil
}

func (d *Drinks) GetDrink(ctx context.Context, id int64) (*model.Drink, error) {
	return d.lookup(ctx, id)
}

func (d *Drinks) UpdateDrink(
	ctx context.Context,
	id int64,
	u *model.DrinkUpdate,
) (*model.Drink, error) {
	drink, err := d.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.Validate(); err != nil {
		return nil, unprocessable(err)
	}
	if err := u.Apply(drink); err != nil {
		return nil, unprocessable(err)
	}

	err = d.db.UpdateDrink(ctx, drink)
	switch err {
	case nil:
	case store.ErrDrinkNotFound:
		return nil, ErrDrinkNotFound
	default:
		return nil, unprocessable(errors.Wrap(err, "drinks: failed to update drink"))
	}

	log.FromContext(ctx).Infof("updated drink %d", drink.ID)
	return drink, nil
}

func (d *Drinks) DeleteDrink(ctx context.Context, id int64) (*model.Drink, error) {
	drink, err := d.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	err = d.db.DeleteDrink(ctx, id)
	switch err {
	case nil:
	case store.ErrDrinkNotFound:
		return nil, ErrDrinkNotFound
	default:
		return nil, unprocessable(errors.Wrap(err, "drinks: failed to delete drink"))
	}

	log.FromContext(ctx).Infof("deleted drink %d", drink.ID)
	return drink, nil
}
