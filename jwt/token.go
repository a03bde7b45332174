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

package jwt

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrTokenExpired       = errors.New("jwt expired")
	ErrTokenInvalid       = errors.New("jwt invalid")
	ErrTokenInvalidClaims = errors.New("jwt audience or issuer mismatch")
	ErrKeyNotFound        = errors.New("signing key not found")
)

// Token wrapper
type Token struct {
	Claims
	// KeyID is the "kid" header the token was signed with.
	KeyID string
}

// Handler validates tokens issued by the identity provider.
type Handler interface {
	// FromJWT parses and verifies tokstr. The returned error is (or
	// wraps) one of ErrTokenExpired, ErrTokenInvalid,
	// ErrTokenInvalidClaims or ErrKeyNotFound.
	FromJWT(ctx context.Context, tokstr string) (*Token, error)
}
