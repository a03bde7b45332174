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

package testing

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"time"

	"github.com/go-jose/go-jose/v4"
	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"github.com/coffeeshop/drinks/jwt"
)

const (
	TestAudience = "drinks"
	TestIssuer   = "https://drinks.example.com/"
)

func ContextMatcher() interface{} {
	return mock.MatchedBy(func(_ context.Context) bool {
		return true
	})
}

// Signer issues RS256 tokens the way the identity provider does.
type Signer struct {
	KeyID string
	Key   *rsa.PrivateKey
}

func NewSigner(kid string) *Signer {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}
	return &Signer{
		KeyID: kid,
		Key:   key,
	}
}

// KeySet is the JWKS publishing the signer's public key.
func (s *Signer) KeySet() *jose.JSONWebKeySet {
	return &jose.JSONWebKeySet{
		Keys: []jose.JSONWebKey{{
			Key:       &s.Key.PublicKey,
			KeyID:     s.KeyID,
			Algorithm: jwt.AlgorithmRS256,
			Use:       "sig",
		}},
	}
}

func (s *Signer) Sign(claims *jwt.Claims) string {
	t := jwtgo.NewWithClaims(jwtgo.SigningMethodRS256, claims)
	t.Header["kid"] = s.KeyID
	str, err := t.SignedString(s.Key)
	if err != nil {
		panic(err)
	}
	return str
}

// Claims returns valid claims for TestAudience and TestIssuer
// granting perms.
func Claims(perms ...string) *jwt.Claims {
	if perms == nil {
		perms = []string{}
	}
	return &jwt.Claims{
		RegisteredClaims: jwtgo.RegisteredClaims{
			Subject:   "auth0|barista",
			Audience:  jwtgo.ClaimStrings{TestAudience},
			Issuer:    TestIssuer,
			IssuedAt:  jwtgo.NewNumericDate(time.Now()),
			ExpiresAt: jwtgo.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Permissions: perms,
	}
}

// KeySetFunc adapts a function to jwt.KeySetProvider.
type KeySetFunc func(ctx context.Context) (*jose.JSONWebKeySet, error)

func (f KeySetFunc) GetKeySet(ctx context.Context) (*jose.JSONWebKeySet, error) {
	return f(ctx)
}

func StaticKeySet(set *jose.JSONWebKeySet) KeySetFunc {
	return func(context.Context) (*jose.JSONWebKeySet, error) {
		return set, nil
	}
}
