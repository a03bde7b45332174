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

package http

import (
	"net/http"
	"strconv"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/routing"
	"github.com/pkg/errors"

	"github.com/coffeeshop/drinks/authz"
	"github.com/coffeeshop/drinks/common"
	"github.com/coffeeshop/drinks/drink"
	"github.com/coffeeshop/drinks/jwt"
	"github.com/coffeeshop/drinks/model"
)

const (
	uriDrinks       = "/drinks"
	uriDrinksDetail = "/drinks-detail"
	uriDrink        = "/drinks/:id"
	uriHealth       = "/health"
)

const (
	PermGetDrinksDetail = "get:drinks-detail"
	PermPostDrinks      = "post:drinks"
	PermPatchDrinks     = "patch:drinks"
	PermDeleteDrinks    = "delete:drinks"
)

// ApiHandler provides the routed rest.App of a service.
type ApiHandler interface {
	GetApp() (rest.App, error)
}

// DrinksResponse is the body of every successful drinks request.
type DrinksResponse struct {
	Success bool        `json:"success"`
	Drinks  interface{} `json:"drinks"`
}

type DrinksApiHandlers struct {
	app        drink.App
	jwtHandler jwt.Handler
	authorizer authz.Authorizer
}

// return an ApiHandler for the drinks app
func NewDrinksApiHandlers(
	app drink.App,
	jwtHandler jwt.Handler,
	authorizer authz.Authorizer,
) ApiHandler {
	return &DrinksApiHandlers{
		app:        app,
		jwtHandler: jwtHandler,
		authorizer: authorizer,
	}
}

// protect requires perm on the request before calling h.
func (i *DrinksApiHandlers) protect(perm string, h rest.HandlerFunc) rest.HandlerFunc {
	mw := &authz.AuthzMiddleware{
		Authz:      i.authorizer,
		JWTHandler: i.jwtHandler,
		Permission: perm,
	}
	return mw.MiddlewareFunc(h)
}

func (i *DrinksApiHandlers) GetApp() (rest.App, error) {
	routes := []*rest.Route{
		rest.Get(uriHealth, i.HealthCheckHandler),

		rest.Get(uriDrinks, i.GetDrinksHandler),
		rest.Get(uriDrinksDetail,
			i.protect(PermGetDrinksDetail, i.GetDrinksDetailHandler)),
		rest.Post(uriDrinks,
			i.protect(PermPostDrinks, i.PostDrinkHandler)),
		rest.Patch(uriDrink,
			i.protect(PermPatchDrinks, i.PatchDrinkHandler)),
		rest.Delete(uriDrink,
			i.protect(PermDeleteDrinks, i.DeleteDrinkHandler)),
	}

	app, err := rest.MakeRouter(
		// augment routes with OPTIONS handler
		routing.AutogenOptionsRoutes(routes, routing.AllowHeaderOptionsGenerator)...,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create router")
	}

	return app, nil
}

func (i *DrinksApiHandlers) HealthCheckHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()
	l := log.FromContext(ctx)

	err := i.app.HealthCheck(ctx)
	if err != nil {
		common.RestErrWithLog(w, r, l, err,
			http.StatusServiceUnavailable, common.MsgServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (i *DrinksApiHandlers) GetDrinksHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()
	l := log.FromContext(ctx)

	drinks, err := i.app.ListDrinks(ctx)
	if err != nil {
		common.RestErrWithLogInternal(w, r, l, err)
		return
	}

	short := make([]model.DrinkShort, len(drinks))
	for n, d := range drinks {
		short[n] = d.Short()
	}
	_ = w.WriteJson(DrinksResponse{Success: true, Drinks: short})
}

func (i *DrinksApiHandlers) GetDrinksDetailHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()
	l := log.FromContext(ctx)

	drinks, err := i.app.ListDrinks(ctx)
	if err != nil {
		common.RestErrWithLogInternal(w, r, l, err)
		return
	}

	long := make([]model.DrinkLong, len(drinks))
	for n, d := range drinks {
		long[n], err = d.Long()
		if err != nil {
			common.RestErrWithLogInternal(w, r, l, err)
			return
		}
	}
	_ = w.WriteJson(DrinksResponse{Success: true, Drinks: long})
}

func (i *DrinksApiHandlers) PostDrinkHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()
	l := log.FromContext(ctx)

	var nd model.NewDrink
	if err := r.DecodeJsonPayload(&nd); err != nil {
		err = errors.Wrap(err, "failed to decode request body")
		common.RestErrWithLog(w, r, l, err,
			http.StatusUnprocessableEntity, common.MsgUnprocessable)
		return
	}

	d, err := i.app.CreateDrink(ctx, &nd)
	if err != nil {
		restDrinkErr(w, r, l, err)
		return
	}

	writeLong(w, r, l, d)
}

func (i *DrinksApiHandlers) PatchDrinkHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()
	l := log.FromContext(ctx)

	id, err := drinkID(r)
	if err != nil {
		common.RestErrWithLog(w, r, l, err, http.StatusNotFound, common.MsgNotFound)
		return
	}

	if _, err := i.app.GetDrink(ctx, id); err != nil {
		restDrinkErr(w, r, l, err)
		return
	}

	var u model.DrinkUpdate
	if err := r.DecodeJsonPayload(&u); err != nil {
		err = errors.Wrap(err, "failed to decode request body")
		common.RestErrWithLog(w, r, l, err,
			http.StatusUnprocessableEntity, common.MsgUnprocessable)
		return
	}

	d, err := i.app.UpdateDrink(ctx, id, &u)
	if err != nil {
		restDrinkErr(w, r, l, err)
		return
	}

	writeLong(w, r, l, d)
}

func (i *DrinksApiHandlers) DeleteDrinkHandler(w rest.ResponseWriter, r *rest.Request) {
	ctx := r.Context()
	l := log.FromContext(ctx)

	id, err := drinkID(r)
	if err != nil {
		common.RestErrWithLog(w, r, l, err, http.StatusNotFound, common.MsgNotFound)
		return
	}

	d, err := i.app.DeleteDrink(ctx, id)
	if err != nil {
		restDrinkErr(w, r, l, err)
		return
	}

	writeLong(w, r, l, d)
}

func drinkID(r *rest.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathParam("id"), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid drink id")
	}
	return id, nil
}

func writeLong(w rest.ResponseWriter, r *rest.Request, l *log.Logger, d *model.Drink) {
	long, err := d.Long()
	if err != nil {
		common.RestErrWithLogInternal(w, r, l, err)
		return
	}
	_ = w.WriteJson(DrinksResponse{Success: true, Drinks: []model.DrinkLong{long}})
}

func restDrinkErr(w rest.ResponseWriter, r *rest.Request, l *log.Logger, err error) {
	switch errors.Cause(err) {
	case drink.ErrDrinkNotFound:
		common.RestErrWithLog(w, r, l, err, http.StatusNotFound, common.MsgNotFound)
	case drink.ErrUnprocessable:
		common.RestErrWithLog(w, r, l, err,
			http.StatusUnprocessableEntity, common.MsgUnprocessable)
	default:
		common.RestErrWithLogInternal(w, r, l, err)
	}
}
