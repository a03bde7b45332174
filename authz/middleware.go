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

package authz

import (
	"net/http"
	"strings"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/log"

	"github.com/coffeeshop/drinks/common"
	"github.com/coffeeshop/drinks/jwt"
)

const (
	// token's key in request.Env
	ReqPayload = "authz_payload"

	authHeaderName = "Authorization"
	bearerScheme   = "bearer"
)

// AuthzMiddleware guards a handler with a required permission.
// It validates the bearer token, and delegates the permission check to an
// Authorizer. The validated token is stored in the request environment.
type AuthzMiddleware struct {
	Authz      Authorizer
	JWTHandler jwt.Handler
	Permission string
}

// MiddlewareFunc makes AuthzMiddleware implement the Middleware interface.
func (mw *AuthzMiddleware) MiddlewareFunc(h rest.HandlerFunc) rest.HandlerFunc {
	return func(w rest.ResponseWriter, r *rest.Request) {
		ctx := r.Context()
		l := log.FromContext(ctx)

		tokstr, aerr := ExtractToken(r.Request)
		if aerr != nil {
			restAuthErr(w, r, l, aerr)
			return
		}

		token, err := mw.JWTHandler.FromJWT(ctx, tokstr)
		if err != nil {
			restAuthErr(w, r, l, authErrorFromJWT(err))
			return
		}

		err = mw.Authz.Authorize(ctx, token, mw.Permission)
		if err != nil {
			if aerr := authErrorFromAuthz(err); aerr != nil {
				restAuthErr(w, r, l, aerr)
			} else {
				common.RestErrWithLogInternal(w, r, l, err)
			}
			return
		}

		r.Env[ReqPayload] = token

		h(w, r)
	}
}

// restAuthErr renders every authorization failure with the same message;
// the kind and description only reach the log.
func restAuthErr(w rest.ResponseWriter, r *rest.Request, l *log.Logger, err *AuthError) {
	common.RestErrWithLog(w, r, l, err, err.Status, common.MsgTokenExpired)
}

// ExtractToken extracts the JWT from the bearer authorization header.
// The scheme must be exactly "bearer".
func ExtractToken(req *http.Request) (string, *AuthError) {
	auth := req.Header.Get(authHeaderName)
	if auth == "" {
		return "", NewAuthError(KindAuthHeaderMissing, DescHeaderMissing, nil)
	}

	parts := strings.Fields(auth)
	switch {
	case len(parts) == 0:
		return "", NewAuthError(KindAuthHeaderMalformed, DescTokenNotFound, nil)
	case parts[0] != bearerScheme:
		return "", NewAuthError(KindAuthHeaderMalformed, DescNotBearer, nil)
	case len(parts) == 1:
		return "", NewAuthError(KindAuthHeaderMalformed, DescTokenNotFound, nil)
	case len(parts) > 2:
		return "", NewAuthError(KindAuthHeaderMalformed, DescNotBearerToken, nil)
	}
	return parts[1], nil
}

// GetRequestPayload returns the token validated by AuthzMiddleware, nil
// on routes without authorization.
func GetRequestPayload(env map[string]interface{}) *jwt.Token {
	token, _ := env[ReqPayload].(*jwt.Token)
	return token
}
