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
	"net/http"
	"strings"
	"time"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	api_http "github.com/coffeeshop/drinks/api/http"
	"github.com/coffeeshop/drinks/authz"
	"github.com/coffeeshop/drinks/client/jwks"
	. "github.com/coffeeshop/drinks/config"
	"github.com/coffeeshop/drinks/drink"
	"github.com/coffeeshop/drinks/jwt"
	"github.com/coffeeshop/drinks/store"
)

var (
	ErrNoKeySet = errors.New("either " + SettingAuthDomain + " or " +
		SettingJWKSURL + " must be set")
)

func SetupAPI(stacktype string) (*rest.Api, error) {
	api := rest.NewApi()
	if err := SetupMiddleware(api, stacktype); err != nil {
		return nil, errors.Wrap(err, "failed to setup middleware")
	}

	return api, nil
}

// authConfigFromAppConfig maps the application configuration to the key
// set client and token validation settings. The key set address and the
// issuer default to the identity provider domain.
func authConfigFromAppConfig(c config.Reader) (jwks.Config, jwt.Config, error) {
	domain := c.GetString(SettingAuthDomain)

	url := c.GetString(SettingJWKSURL)
	if url == "" {
		if domain == "" {
			return jwks.Config{}, jwt.Config{}, ErrNoKeySet
		}
		url = jwks.URLFromDomain(domain)
	}

	issuer := c.GetString(SettingJWTIssuer)
	if issuer == "" && domain != "" {
		issuer = domain
		if !strings.Contains(issuer, "://") {
			issuer = "https://" + issuer
		}
		issuer = strings.TrimSuffix(issuer, "/") + "/"
	}

	keysConf := jwks.Config{
		JWKSURL: url,
		Timeout: time.Duration(c.GetInt(SettingJWKSTimeoutSeconds)) * time.Second,
	}
	jwtConf := jwt.Config{
		Audience:   c.GetString(SettingJWTAudience),
		Issuer:     issuer,
		Algorithms: strings.Fields(c.GetString(SettingJWTAlgorithms)),
	}
	return keysConf, jwtConf, nil
}

func RunServer(c config.Reader, db store.DataStore) error {
	l := log.New(log.Ctx{})

	keysConf, jwtConf, err := authConfigFromAppConfig(c)
	if err != nil {
		return err
	}
	l.Infof("using key set %s", keysConf.JWKSURL)

	jwth := jwt.NewJWTHandlerJWKS(jwks.NewClient(keysConf), jwtConf)

	drinksapi := api_http.NewDrinksApiHandlers(
		drink.NewDrinks(db),
		jwth,
		authz.PermissionAuthz{},
	)

	api, err := SetupAPI(c.GetString(SettingMiddleware))
	if err != nil {
		return errors.Wrap(err, "API setup failed")
	}

	apph, err := drinksapi.GetApp()
	if err != nil {
		return errors.Wrap(err, "drinks API handlers setup failed")
	}
	api.SetApp(apph)

	addr := c.GetString(SettingListen)
	l.Printf("listening on %s", addr)

	return http.ListenAndServe(addr, api.MakeHandler())
}
