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
	"fmt"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/accesslog"
	dlog "github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/requestid"
	"github.com/mendersoftware/go-lib-micro/requestlog"

	"github.com/coffeeshop/drinks/common"
)

const (
	EnvProd = "prod"
	EnvDev  = "dev"
)

// logging stages; the access log reads the timer and recorder results
// from the request environment
func loggingStack() []rest.Middleware {
	return []rest.Middleware{
		&requestlog.RequestLogMiddleware{},
		&accesslog.AccessLogMiddleware{Format: accesslog.SimpleLogFormat},
		&rest.TimerMiddleware{},
		&rest.RecorderMiddleware{},
	}
}

// stages between the response encoding and the routes
func requestStack() []rest.Middleware {
	return []rest.Middleware{
		// framework errors get the drinks error body
		&common.ErrorBodyMiddleware{},
		&rest.RecoverMiddleware{},
		// non-empty bodies must be 'application/json'
		&rest.ContentTypeCheckerMiddleware{},
		&requestid.RequestIdMiddleware{},
	}
}

// middlewareStack assembles the stack named by mwtype. The stacks differ in
// response encoding only: gzip in prod, indented json in dev.
func middlewareStack(mwtype string) ([]rest.Middleware, error) {
	var encoding rest.Middleware
	switch mwtype {
	case EnvProd:
		encoding = &rest.GzipMiddleware{}
	case EnvDev:
		encoding = &rest.JsonIndentMiddleware{}
	default:
		return nil, fmt.Errorf("incorrect middleware type: %s", mwtype)
	}

	stack := append(loggingStack(), encoding)
	return append(stack, requestStack()...), nil
}

// SetupMiddleware installs the named stack; authorization is applied per
// route by the drinks handlers.
func SetupMiddleware(api *rest.Api, mwtype string) error {
	l := dlog.New(dlog.Ctx{})

	l.Infof("setting up %s middleware", mwtype)

	mwstack, err := middlewareStack(mwtype)
	if err != nil {
		return err
	}

	api.Use(mwstack...)

	return nil
}
