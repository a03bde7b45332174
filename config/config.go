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

package config

import (
	"github.com/mendersoftware/go-lib-micro/config"
)

const (
	SettingListen        = "listen"
	SettingListenDefault = ":8080"

	SettingMiddleware        = "middleware"
	SettingMiddlewareDefault = "prod"

	SettingDb        = "mongo"
	SettingDbDefault = "mongo-drinks"

	SettingDbSSL        = "mongo_ssl"
	SettingDbSSLDefault = false

	SettingDbSSLSkipVerify        = "mongo_ssl_skipverify"
	SettingDbSSLSkipVerifyDefault = false

	SettingDbUsername = "mongo_username"
	SettingDbPassword = "mongo_password"

	// identity provider domain, e.g. "coffee.eu.auth0.com"; used to
	// derive the JWKS URL and the issuer when those are not set
	SettingAuthDomain        = "auth_domain"
	SettingAuthDomainDefault = ""

	SettingJWKSURL        = "jwks_url"
	SettingJWKSURLDefault = ""

	SettingJWKSTimeoutSeconds        = "jwks_timeout_seconds"
	SettingJWKSTimeoutSecondsDefault = 10

	SettingJWTAudience        = "jwt_audience"
	SettingJWTAudienceDefault = "drinks"

	SettingJWTIssuer        = "jwt_issuer"
	SettingJWTIssuerDefault = ""

	// space separated list of accepted signing algorithms
	SettingJWTAlgorithms        = "jwt_algorithms"
	SettingJWTAlgorithmsDefault = "RS256"
)

var (
	ConfigDefaults = []config.Default{
		{Key: SettingListen, Value: SettingListenDefault},
		{Key: SettingMiddleware, Value: SettingMiddlewareDefault},
		{Key: SettingDb, Value: SettingDbDefault},
		{Key: SettingDbSSL, Value: SettingDbSSLDefault},
		{Key: SettingDbSSLSkipVerify, Value: SettingDbSSLSkipVerifyDefault},
		{Key: SettingAuthDomain, Value: SettingAuthDomainDefault},
		{Key: SettingJWKSURL, Value: SettingJWKSURLDefault},
		{Key: SettingJWKSTimeoutSeconds, Value: SettingJWKSTimeoutSecondsDefault},
		{Key: SettingJWTAudience, Value: SettingJWTAudienceDefault},
		{Key: SettingJWTIssuer, Value: SettingJWTIssuerDefault},
		{Key: SettingJWTAlgorithms, Value: SettingJWTAlgorithmsDefault},
	}
)
