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

	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	AlgorithmRS256 = "RS256"
)

// KeySetProvider delivers the key set published by the identity provider.
type KeySetProvider interface {
	GetKeySet(ctx context.Context) (*jose.JSONWebKeySet, error)
}

type Config struct {
	// expected "aud", not checked if empty
	Audience string
	// expected "iss", not checked if empty
	Issuer string
	// accepted signing algorithms, defaults to RS256
	Algorithms []string
}

// JWTHandlerJWKS verifies tokens with the key matching their "kid"
// header in the provider's JWKS.
type JWTHandlerJWKS struct {
	keys   KeySetProvider
	parser *jwt.Parser
}

func NewJWTHandlerJWKS(keys KeySetProvider, conf Config) *JWTHandlerJWKS {
	algs := conf.Algorithms
	if len(algs) == 0 {
		algs = []string{AlgorithmRS256}
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods(algs),
		jwt.WithExpirationRequired(),
	}
	if conf.Audience != "" {
		opts = append(opts, jwt.WithAudience(conf.Audience))
	}
	if conf.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(conf.Issuer))
	}
	return &JWTHandlerJWKS{
		keys:   keys,
		parser: jwt.NewParser(opts...),
	}
}

func (j *JWTHandlerJWKS) FromJWT(ctx context.Context, tokstr string) (*Token, error) {
	claims := &Claims{}
	var keyID string
	_, err := j.parser.ParseWithClaims(tokstr, claims,
		func(token *jwt.Token) (interface{}, error) {
			kid, _ := token.Header["kid"].(string)
			keyID = kid
			set, err := j.keys.GetKeySet(ctx)
			if err != nil {
				return nil, errors.Wrap(err, "failed to obtain key set")
			}
			keys := set.Key(kid)
			if len(keys) == 0 {
				return nil, ErrKeyNotFound
			}
			return keys[0].Public().Key, nil
		},
	)

	switch {
	case err == nil:
		return &Token{Claims: *claims, KeyID: keyID}, nil
	case errors.Is(err, ErrKeyNotFound):
		return nil, ErrKeyNotFound
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidAudience),
		errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return nil, errors.WithMessage(ErrTokenInvalidClaims, err.Error())
	default:
		return nil, errors.WithMessage(ErrTokenInvalid, err.Error())
	}
}
