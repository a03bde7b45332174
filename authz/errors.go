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

	"github.com/pkg/errors"

	"github.com/coffeeshop/drinks/jwt"
)

// Kind classifies authorization failures.
type Kind string

const (
	KindAuthHeaderMissing   Kind = "auth_header_missing"
	KindAuthHeaderMalformed Kind = "auth_header_malformed"
	KindTokenExpired        Kind = "token_expired"
	KindTokenInvalidClaims  Kind = "token_invalid_claims"
	KindKeyNotFound         Kind = "key_not_found"
	KindPermissionDenied    Kind = "permission_denied"
)

const (
	CodeInvalidHeader = "invalid_header"
	CodeTokenExpired  = "token_expired"
	CodeInvalidClaims = "invalid_claims"
	CodeUnauthorized  = "unauthorized"
)

const (
	DescHeaderMissing      = "Authorization header is expected."
	DescNotBearer          = "Authorization header must start with \"bearer\"."
	DescTokenNotFound      = "Token not found."
	DescNotBearerToken     = "Authorization header must be bearer token."
	DescTokenExpired       = "Token expired."
	DescInvalidClaims      = "Incorrect claims. Please, check the audience and issuer."
	DescUnparsable         = "Unable to parse authentication token."
	DescKeyNotFound        = "Unable to find the appropriate key."
	DescNoPermissions      = "Permissions not included in JWT."
	DescPermissionNotFound = "Permission not found."
)

// AuthError is the outcome of a failed authorization check. Status is the
// HTTP status the failure is reported with.
type AuthError struct {
	Kind        Kind
	Code        string
	Description string
	Status      int

	err error
}

func (e *AuthError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.Description + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.Description
}

func (e *AuthError) Unwrap() error {
	return e.err
}

func NewAuthError(kind Kind, description string, cause error) *AuthError {
	e := &AuthError{
		Kind:        kind,
		Description: description,
		err:         cause,
	}
	switch kind {
	case KindTokenExpired:
		e.Code, e.Status = CodeTokenExpired, http.StatusUnauthorized
	case KindTokenInvalidClaims:
		e.Code, e.Status = CodeInvalidClaims, http.StatusUnauthorized
	case KindPermissionDenied:
		e.Code, e.Status = CodeUnauthorized, http.StatusForbidden
	default:
		e.Code, e.Status = CodeInvalidHeader, http.StatusUnauthorized
	}
	return e
}

// authErrorFromJWT translates token validation failures.
func authErrorFromJWT(err error) *AuthError {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return NewAuthError(KindTokenExpired, DescTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenInvalidClaims):
		return NewAuthError(KindTokenInvalidClaims, DescInvalidClaims, err)
	case errors.Is(err, jwt.ErrKeyNotFound):
		return NewAuthError(KindKeyNotFound, DescKeyNotFound, err)
	default:
		return NewAuthError(KindAuthHeaderMalformed, DescUnparsable, err)
	}
}

// authErrorFromAuthz translates Authorizer failures; nil means the error
// is not an authorization outcome.
func authErrorFromAuthz(err error) *AuthError {
	switch errors.Cause(err) {
	case ErrAuthzNoPermissions:
		e := NewAuthError(KindTokenInvalidClaims, DescNoPermissions, err)
		e.Status = http.StatusBadRequest
		return e
	case ErrAuthzUnauthorized:
		return NewAuthError(KindPermissionDenied, DescPermissionNotFound, err)
	}
	return nil
}
