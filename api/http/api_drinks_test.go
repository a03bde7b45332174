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
	"io/ioutil"
	"net/http"
	"testing"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/ant0ine/go-json-rest/rest/test"
	"github.com/mendersoftware/go-lib-micro/requestid"
	"github.com/mendersoftware/go-lib-micro/requestlog"
	mt "github.com/mendersoftware/go-lib-micro/testing"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/coffeeshop/drinks/authz"
	"github.com/coffeeshop/drinks/common"
	"github.com/coffeeshop/drinks/drink"
	mdrink "github.com/coffeeshop/drinks/drink/mocks"
	"github.com/coffeeshop/drinks/jwt"
	"github.com/coffeeshop/drinks/model"
	mtest "github.com/coffeeshop/drinks/utils/testing"
)

const (
	waterRecipe = `[{"color":"blue","name":"water","parts":1}]`
)

var signer = mtest.NewSigner("key-1")

func makeApi(router rest.App) *rest.Api {
	api := rest.NewApi()
	api.Use(
		&requestlog.RequestLogMiddleware{
			BaseLogger: &logrus.Logger{Out: ioutil.Discard},
		},
		&requestid.RequestIdMiddleware{},
	)
	api.SetApp(router)
	return api
}

func makeMockApiHandler(t *testing.T, app drink.App) http.Handler {
	jwth := jwt.NewJWTHandlerJWKS(mtest.StaticKeySet(signer.KeySet()), jwt.Config{
		Audience: mtest.TestAudience,
		Issuer:   mtest.TestIssuer,
	})
	handlers := NewDrinksApiHandlers(app, jwth, authz.PermissionAuthz{})
	assert.NotNil(t, handlers)

	router, err := handlers.GetApp()
	assert.NotNil(t, router)
	assert.NoError(t, err)

	return makeApi(router).MakeHandler()
}

// makeReq signs a token granting perms; no perms means no Authorization
// header at all.
func makeReq(method, url string, body interface{}, perms ...string) *http.Request {
	req := test.MakeSimpleRequest(method, url, body)
	if len(perms) > 0 {
		req.Header.Set("Authorization", "bearer "+signer.Sign(mtest.Claims(perms...)))
	}
	req.Header.Set("X-MEN-RequestID", "test")
	return req
}

func restError(status int, msg string) common.ErrorResponse {
	return common.ErrorResponse{Success: false, Error: status, Message: msg}
}

func water() *model.Drink {
	return &model.Drink{ID: 1, Title: "Water", Recipe: waterRecipe}
}

var waterLong = map[string]interface{}{
	"id":    1,
	"title": "Water",
	"recipe": []interface{}{
		map[string]interface{}{"color": "blue", "name": "water", "parts": 1},
	},
}

func TestDrinksApiHealthCheck(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		appErr error

		checker mt.ResponseChecker
	}{
		"ok": {
			checker: mt.NewJSONResponse(http.StatusNoContent, nil, nil),
		},
		"error, unhealthy": {
			appErr: errors.New("connection refused"),
			checker: mt.NewJSONResponse(
				http.StatusServiceUnavailable,
				nil,
				restError(http.StatusServiceUnavailable, common.MsgServiceUnavailable),
			),
		},
	}

	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			app := &mdrink.App{}
			app.On("HealthCheck", mtest.ContextMatcher()).Return(tc.appErr)

			api := makeMockApiHandler(t, app)
			recorded := test.RunRequest(t, api, makeReq("GET", "http://1.2.3.4/health", nil))
			mt.CheckResponse(t, tc.checker, recorded)
		})
	}
}

func TestDrinksApiGetDrinks(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		perms []string

		drinks []model.Drink
		appErr error

		checker mt.ResponseChecker
	}{
		"ok, no auth required": {
			drinks: []model.Drink{
				*water(),
				{ID: 2, Title: "Coffee", Recipe: `[{"color":"brown","name":"coffee","parts":1}]`},
			},
			checker: mt.NewJSONResponse(
				http.StatusOK,
				nil,
				map[string]interface{}{
					"success": true,
					"drinks": []interface{}{
						map[string]interface{}{"id": 1, "title": "Water"},
						map[string]interface{}{"id": 2, "title": "Coffee"},
					},
				},
			),
		},
		"ok, empty": {
			drinks: []model.Drink{},
			checker: mt.NewJSONResponse(
				http.StatusOK,
				nil,
				DrinksResponse{Success: true, Drinks: []interface{}{}},
			),
		},
		"ok, any token is ignored": {
			perms:  []string{"delete:drinks"},
			drinks: []model.Drink{*water()},
			checker: mt.NewJSONResponse(
				http.StatusOK,
				nil,
				DrinksResponse{Success: true, Drinks: []model.DrinkShort{{ID: 1, Title: "Water"}}},
			),
		},
		"error, internal": {
			appErr: errors.New("db failure"),
			checker: mt.NewJSONResponse(
				http.StatusInternalServerError,
				nil,
				restError(http.StatusInternalServerError, common.MsgInternal),
			),
		},
	}

	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			app := &mdrink.App{}
			app.On("ListDrinks", mtest.ContextMatcher()).Return(tc.drinks, tc.appErr)

			api := makeMockApiHandler(t, app)
			recorded := test.RunRequest(t, api,
				makeReq("GET", "http://1.2.3.4/drinks", nil, tc.perms...))
			mt.CheckResponse(t, tc.checker, recorded)
		})
	}
}

func TestDrinksApiGetDrinksDetail(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		perms []string

		callApp bool
		drinks  []model.Drink
		appErr  error

		checker mt.ResponseChecker
	}{
		"ok": {
			perms:   []string{PermGetDrinksDetail},
			callApp: true,
			drinks:  []model.Drink{*water()},
			checker: mt.NewJSONResponse(
				http.StatusOK,
				nil,
				map[string]interface{}{
					"success": true,
					"drinks":  []interface{}{waterLong},
				},
			),
		},
		"error, no auth": {
			checker: mt.NewJSONResponse(
				http.StatusUnauthorized,
				nil,
				restError(http.StatusUnauthorized, common.MsgTokenExpired),
			),
		},
		"error, permission denied": {
			perms: []string{PermPostDrinks},
			checker: mt.NewJSONResponse(
				http.StatusForbidden,
				nil,
				restError(http.StatusForbidden, common.MsgTokenExpired),
			),
		},
		"error, corrupt recipe": {
			perms:   []string{PermGetDrinksDetail},
			callApp: true,
			drinks:  []model.Drink{{ID: 1, Title: "Water", Recipe: "{"}},
			checker: mt.NewJSONResponse(
				http.StatusInternalServerError,
				nil,
				restError(http.StatusInternalServerError, common.MsgInternal),
			),
		},
		"error, internal": {
			perms:   []string{PermGetDrinksDetail},
			callApp: true,
			appErr:  errors.New("db failure"),
			checker: mt.NewJSONResponse(
				http.StatusInternalServerError,
				nil,
				restError(http.StatusInternalServerError, common.MsgInternal),
			),
		},
	}

	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			app := &mdrink.App{}
			if tc.callApp {
				app.On("ListDrinks", mtest.ContextMatcher()).Return(tc.drinks, tc.appErr)
			}
			defer app.AssertExpectations(t)

			api := makeMockApiHandler(t, app)
			recorded := test.RunRequest(t, api,
				makeReq("GET", "http://1.2.3.4/drinks-detail", nil, tc.perms...))
			mt.CheckResponse(t, tc.checker, recorded)
		})
	}
}

func TestDrinksApiPostDrink(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		perms []string
		body  interface{}

		callApp bool
		inDrink *model.NewDrink
		drink   *model.Drink
		appErr  error

		checker mt.ResponseChecker
	}{
		"ok": {
			perms: []string{PermPostDrinks},
			body: map[string]interface{}{
				"title": "Water",
				"recipe": []interface{}{
					map[string]interface{}{"name": "water", "color": "blue", "parts": 1},
				},
			},
			callApp: true,
			inDrink: &model.NewDrink{
				Title:  "Water",
				Recipe: &model.Recipe{{Name: "water", Color: "blue", Parts: 1}},
			},
			drink: water(),
			checker: mt.NewJSONResponse(
				http.StatusOK,
				nil,
				map[string]interface{}{
					"success": true,
					"drinks":  []interface{}{waterLong},
				},
			),
		},
		"ok, single ingredient": {
			perms: []string{PermPostDrinks},
			body: map[string]interface{}{
				"title":  "Water",
				"recipe": map[string]interface{}{"name": "water", "color": "blue", "parts": 1},
			},
			callApp: true,
			inDrink: &model.NewDrink{
				Title:  "Water",
				Recipe: &model.Recipe{{Name: "water", Color: "blue", Parts: 1}},
			},
			drink: water(),
			checker: mt.NewJSONResponse(
				http.StatusOK,
				nil,
				map[string]interface{}{
					"success": true,
					"drinks":  []interface{}{waterLong},
				},
			),
		},
		"error, malformed body": {
			perms: []string{PermPostDrinks},
			body:  "not a drink",
			checker: mt.NewJSONResponse(
				http.StatusUnprocessableEntity,
				nil,
				restError(http.StatusUnprocessableEntity, common.MsgUnprocessable),
			),
		},
		"error, unprocessable": {
			perms:   []string{PermPostDrinks},
			body:    map[string]interface{}{"title": "Water"},
			callApp: true,
			inDrink: &model.NewDrink{Title: "Water"},
			appErr:  errors.WithMessage(drink.ErrUnprocessable, "recipe: is required"),
			checker: mt.NewJSONResponse(
				http.StatusUnprocessableEntity,
				nil,
				restError(http.StatusUnprocessableEntity, common.MsgUnprocessable),
			),
		},
		"error, permission denied": {
			perms: []string{PermGetDrinksDetail},
			body:  map[string]interface{}{"title": "Water"},
			checker: mt.NewJSONResponse(
				http.StatusForbidden,
				nil,
				restError(http.StatusForbidden, common.MsgTokenExpired),
			),
		},
	}

	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			app := &mdrink.App{}
			if tc.callApp {
				app.On("CreateDrink", mtest.ContextMatcher(), tc.inDrink).
					Return(tc.drink, tc.appErr)
			}
			defer app.AssertExpectations(t)

			api := makeMockApiHandler(t, app)
			recorded := test.RunRequest(t, api,
				makeReq("POST", "http://1.2.3.4/drinks", tc.body, tc.perms...))
			mt.CheckResponse(t, tc.checker, recorded)
		})
	}
}

func TestDrinksApiPatchDrink(t *testing.T) {
	t.Parallel()

	title := "Still water"

	testCases := map[string]struct {
		perms []string
		uri   string
		body  interface{}

		callGet bool
		getErr  error

		callApp bool
		update  *model.DrinkUpdate
		drink   *model.Drink
		appErr  error

		checker mt.ResponseChecker
	}{
		"ok": {
			perms:   []string{PermPatchDrinks},
			uri:     "http://1.2.3.4/drinks/1",
			body:    map[string]interface{}{"title": title},
			callGet: true,
			callApp: true,
			update:  &model.DrinkUpdate{Title: &title},
			drink:   &model.Drink{ID: 1, Title: title, Recipe: waterRecipe},
			checker: mt.NewJSONResponse(
				http.StatusOK,
				nil,
				map[string]interface{}{
					"success": true,
					"drinks": []interface{}{
						map[string]interface{}{
							"id":     1,
							"title":  title,
							"recipe": waterLong["recipe"],
						},
					},
				},
			),
		},
		"error, not found": {
			perms:   []string{PermPatchDrinks},
			uri:     "http://1.2.3.4/drinks/42",
			body:    map[string]interface{}{"title": title},
			callGet: true,
			getErr:  drink.ErrDrinkNotFound,
			checker: mt.NewJSONResponse(
				http.StatusNotFound,
				nil,
				restError(http.StatusNotFound, common.MsgNotFound),
			),
		},
		"error, malformed body on a missing drink": {
			perms:   []string{PermPatchDrinks},
			uri:     "http://1.2.3.4/drinks/42",
			body:    []string{"title"},
			callGet: true,
			getErr:  drink.ErrDrinkNotFound,
			checker: mt.NewJSONResponse(
				http.StatusNotFound,
				nil,
				restError(http.StatusNotFound, common.MsgNotFound),
			),
		},
		"error, removed meanwhile": {
			perms:   []string{PermPatchDrinks},
			uri:     "http://1.2.3.4/drinks/1",
			body:    map[string]interface{}{"title": title},
			callGet: true,
			callApp: true,
			update:  &model.DrinkUpdate{Title: &title},
			appErr:  drink.ErrDrinkNotFound,
			checker: mt.NewJSONResponse(
				http.StatusNotFound,
				nil,
				restError(http.StatusNotFound, common.MsgNotFound),
			),
		},
		"error, non-numeric id": {
			perms: []string{PermPatchDrinks},
			uri:   "http://1.2.3.4/drinks/water",
			body:  map[string]interface{}{"title": title},
			checker: mt.NewJSONResponse(
				http.StatusNotFound,
				nil,
				restError(http.StatusNotFound, common.MsgNotFound),
			),
		},
		"error, malformed body": {
			perms:   []string{PermPatchDrinks},
			uri:     "http://1.2.3.4/drinks/1",
			body:    []string{"title"},
			callGet: true,
			checker: mt.NewJSONResponse(
				http.StatusUnprocessableEntity,
				nil,
				restError(http.StatusUnprocessableEntity, common.MsgUnprocessable),
			),
		},
		"error, unprocessable": {
			perms:   []string{PermPatchDrinks},
			uri:     "http://1.2.3.4/drinks/1",
			body:    map[string]interface{}{},
			callGet: true,
			callApp: true,
			update:  &model.DrinkUpdate{},
			appErr:  errors.WithMessage(drink.ErrUnprocessable, model.ErrEmptyUpdate.Error()),
			checker: mt.NewJSONResponse(
				http.StatusUnprocessableEntity,
				nil,
				restError(http.StatusUnprocessableEntity, common.MsgUnprocessable),
			),
		},
		"error, no auth": {
			uri:  "http://1.2.3.4/drinks/1",
			body: map[string]interface{}{"title": title},
			checker: mt.NewJSONResponse(
				http.StatusUnauthorized,
				nil,
				restError(http.StatusUnauthorized, common.MsgTokenExpired),
			),
		},
	}

	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			app := &mdrink.App{}
			if tc.callGet {
				var existing *model.Drink
				if tc.getErr == nil {
					existing = &model.Drink{ID: 1, Title: "Water", Recipe: waterRecipe}
				}
				app.On("GetDrink",
					mtest.ContextMatcher(),
					mock.AnythingOfType("int64"),
				).Return(existing, tc.getErr)
			}
			if tc.callApp {
				app.On("UpdateDrink",
					mtest.ContextMatcher(),
					mock.AnythingOfType("int64"),
					tc.update,
				).Return(tc.drink, tc.appErr)
			}
			defer app.AssertExpectations(t)

			api := makeMockApiHandler(t, app)
			recorded := test.RunRequest(t, api,
				makeReq("PATCH", tc.uri, tc.body, tc.perms...))
			mt.CheckResponse(t, tc.checker, recorded)
		})
	}
}

func TestDrinksApiDeleteDrink(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		perms []string
		uri   string

		callApp bool
		drink   *model.Drink
		appErr  error

		checker mt.ResponseChecker
	}{
		"ok": {
			perms:   []string{PermDeleteDrinks},
			uri:     "http://1.2.3.4/drinks/1",
			callApp: true,
			drink:   water(),
			checker: mt.NewJSONResponse(
				http.StatusOK,
				nil,
				map[string]interface{}{
					"success": true,
					"drinks":  []interface{}{waterLong},
				},
			),
		},
		"error, not found": {
			perms:   []string{PermDeleteDrinks},
			uri:     "http://1.2.3.4/drinks/1",
			callApp: true,
			appErr:  drink.ErrDrinkNotFound,
			checker: mt.NewJSONResponse(
				http.StatusNotFound,
				nil,
				restError(http.StatusNotFound, common.MsgNotFound),
			),
		},
		"error, store failure": {
			perms:   []string{PermDeleteDrinks},
			uri:     "http://1.2.3.4/drinks/1",
			callApp: true,
			appErr:  errors.WithMessage(drink.ErrUnprocessable, "db failure"),
			checker: mt.NewJSONResponse(
				http.StatusUnprocessableEntity,
				nil,
				restError(http.StatusUnprocessableEntity, common.MsgUnprocessable),
			),
		},
		"error, non-numeric id": {
			perms: []string{PermDeleteDrinks},
			uri:   "http://1.2.3.4/drinks/abc",
			checker: mt.NewJSONResponse(
				http.StatusNotFound,
				nil,
				restError(http.StatusNotFound, common.MsgNotFound),
			),
		},
		"error, permission denied": {
			perms: []string{PermPatchDrinks},
			uri:   "http://1.2.3.4/drinks/1",
			checker: mt.NewJSONResponse(
				http.StatusForbidden,
				nil,
				restError(http.StatusForbidden, common.MsgTokenExpired),
			),
		},
	}

	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			app := &mdrink.App{}
			if tc.callApp {
				app.On("DeleteDrink", mtest.ContextMatcher(), int64(1)).
					Return(tc.drink, tc.appErr)
			}
			defer app.AssertExpectations(t)

			api := makeMockApiHandler(t, app)
			recorded := test.RunRequest(t, api,
				makeReq("DELETE", tc.uri, nil, tc.perms...))
			mt.CheckResponse(t, tc.checker, recorded)
		})
	}
}

func TestDrinksApiOptions(t *testing.T) {
	t.Parallel()

	api := makeMockApiHandler(t, &mdrink.App{})
	recorded := test.RunRequest(t, api, makeReq("OPTIONS", "http://1.2.3.4/drinks/1", nil))
	recorded.CodeIs(http.StatusOK)
	allow := recorded.Recorder.Header()["Allow"]
	assert.Contains(t, allow, http.MethodPatch)
	assert.Contains(t, allow, http.MethodDelete)
}
