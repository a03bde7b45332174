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

package model

import (
	"bytes"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

const (
	MaxTitleLength = 80
)

var (
	ErrEmptyUpdate = errors.New("no update information provided")
)

// Ingredient is a single entry of a drink recipe.
type Ingredient struct {
	Color string  `json:"color"`
	Name  string  `json:"name"`
	Parts float64 `json:"parts"`
}

func (i Ingredient) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required),
		validation.Field(&i.Parts, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

// Recipe is the structured form of a drink recipe.
type Recipe []Ingredient

// UnmarshalJSON accepts either a list of ingredients or a single
// ingredient object, which becomes a one element recipe.
func (r *Recipe) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var i Ingredient
		if err := json.Unmarshal(b, &i); err != nil {
			return err
		}
		*r = Recipe{i}
		return nil
	}
	var list []Ingredient
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*r = Recipe(list)
	return nil
}

func (r Recipe) Validate() error {
	if len(r) == 0 {
		return errors.New("recipe: cannot be blank")
	}
	for n, i := range r {
		if err := i.Validate(); err != nil {
			return errors.Wrapf(err, "recipe[%d]", n)
		}
	}
	return nil
}

// Serialize produces the text form of the recipe as kept by the store.
func (r Recipe) Serialize() (string, error) {
	if r == nil {
		r = Recipe{}
	}
	b, err := json.Marshal([]Ingredient(r))
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize recipe")
	}
	return string(b), nil
}

// ParseRecipe is the inverse of Recipe.Serialize.
func ParseRecipe(s string) (Recipe, error) {
	var r Recipe
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize recipe")
	}
	if r == nil {
		r = Recipe{}
	}
	return r, nil
}

// Drink is the stored record.
type Drink struct {
	// store-assigned, immutable
	ID int64 `json:"id" bson:"_id"`

	Title string `json:"title" bson:"title"`

	// serialized Recipe
	Recipe string `json:"-" bson:"recipe"`
}

// DrinkShort is the abbreviated representation of a drink.
type DrinkShort struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// DrinkLong is the full representation of a drink.
type DrinkLong struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Recipe Recipe `json:"recipe"`
}

func (d Drink) Short() DrinkShort {
	return DrinkShort{
		ID:    d.ID,
		Title: d.Title,
	}
}

func (d Drink) Long() (DrinkLong, error) {
	recipe, err := ParseRecipe(d.Recipe)
	if err != nil {
		return DrinkLong{}, errors.Wrapf(err, "drink %d", d.ID)
	}
	return DrinkLong{
		ID:     d.ID,
		Title:  d.Title,
		Recipe: recipe,
	}, nil
}

// NewDrink is the body of a create request.
type NewDrink struct {
	Title  string  `json:"title"`
	Recipe *Recipe `json:"recipe"`
}

func (nd NewDrink) Validate() error {
	return validation.ValidateStruct(&nd,
		validation.Field(&nd.Title, validation.Required, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&nd.Recipe, validation.NotNil),
	)
}

// Drink builds the record to be inserted; the store assigns the ID.
func (nd NewDrink) Drink() (*Drink, error) {
	recipe, err := nd.Recipe.Serialize()
	if err != nil {
		return nil, err
	}
	return &Drink{
		Title:  nd.Title,
		Recipe: recipe,
	}, nil
}

// DrinkUpdate is the body of a patch request; absent fields are kept.
type DrinkUpdate struct {
	Title  *string `json:"title,omitempty"`
	Recipe *Recipe `json:"recipe,omitempty"`
}

func (u DrinkUpdate) Validate() error {
	if u.Title == nil && u.Recipe == nil {
		return ErrEmptyUpdate
	}
	if u.Title != nil {
		if err := validation.Validate(*u.Title,
			validation.Required,
			validation.RuneLength(1, MaxTitleLength),
		); err != nil {
			return errors.Wrap(err, "title")
		}
	}
	if u.Recipe != nil {
		return u.Recipe.Validate()
	}
	return nil
}

// Apply replaces the provided fields on d.
func (u DrinkUpdate) Apply(d *Drink) error {
	if u.Title != nil {
		d.Title = *u.Title
	}
	if u.Recipe != nil {
		recipe, err := u.Recipe.Serialize()
		if err != nil {
			return err
		}
		d.Recipe = recipe
	}
	return nil
}
