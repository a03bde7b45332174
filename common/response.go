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

package common

import (
	"net/http"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/log"
)

const (
	MsgNotFound           = "resource not found"
	MsgUnprocessable      = "unprocessable"
	MsgServiceUnavailable = "service unavailable"
	MsgInternal           = "internal error"
	MsgTokenExpired       = "token expired"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// RestErrWithLog logs err with the request logger and replies with the
// error body carrying status and msg. The cause is never sent to the client.
func RestErrWithLog(
	w rest.ResponseWriter,
	r *rest.Request,
	l *log.Logger,
	err error,
	status int,
	msg string,
) {
	if l == nil {
		l = log.FromContext(r.Context())
	}
	if status >= http.StatusInternalServerError {
		l.Errorf("%s: %v", msg, err)
	} else {
		l.Warnf("%s: %v", msg, err)
	}
	w.WriteHeader(status)
	_ = w.WriteJson(ErrorResponse{
		Success: false,
		Error:   status,
		Message: msg,
	})
}

func RestErrWithLogInternal(w rest.ResponseWriter, r *rest.Request, l *log.Logger, err error) {
	RestErrWithLog(w, r, l, err, http.StatusInternalServerError, MsgInternal)
}
