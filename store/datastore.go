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

package store

import (
	"context"
	"errors"

	"github.com/coffeeshop/drinks/model"
)

var (
	// drink not found
	ErrDrinkNotFound = errors.New("drink not found")
	// another drink already has the title
	ErrDuplicateTitle = errors.New("drink with a given title already exists")
)

type DataStore interface {
	Ping(ctx context.Context) error

	// GetDrinks returns all the drinks ordered by ID
	GetDrinks(ctx context.Context) ([]model.Drink, error)
	// GetDrinkByID returns nil,nil if not found
	GetDrinkByID(ctx context.Context, id int64) (*model.Drink, error)
	// CreateDrink assigns a new ID to d and persists it
	CreateDrink(ctx context.Context, d *model.Drink) error
	// UpdateDrink persists title and recipe of the existing drink d.ID
	UpdateDrink(ctx context.Context, d *model.Drink) error
	DeleteDrink(ctx context.Context, id int64) error
}
