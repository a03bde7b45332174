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
	"context"

	"github.com/pkg/errors"

	"github.com/coffeeshop/drinks/jwt"
)

var (
	ErrAuthzUnauthorized  = errors.New("unauthorized")
	ErrAuthzNoPermissions = errors.New("permissions claim missing")
)

// Authorizer decides whether the bearer of a token may perform the action
// guarded by a permission.
type Authorizer interface {
	// Authorize returns:
	// nil if authorization is granted
	// ErrAuthzNoPermissions if the token carries no permissions claim
	// ErrAuthzUnauthorized otherwise
	Authorize(ctx context.Context, token *jwt.Token, permission string) error
}

// PermissionAuthz grants access when the required permission is one of
// the token's permissions.
type PermissionAuthz struct{}

func (PermissionAuthz) Authorize(ctx context.Context, token *jwt.Token, permission string) error {
	if token == nil {
		return ErrAuthzUnauthorized
	}
	if !token.HasPermissions() {
		return ErrAuthzNoPermissions
	}
	if !token.HasPermission(permission) {
		return ErrAuthzUnauthorized
	}
	return nil
}
