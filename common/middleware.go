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
	"bufio"
	"net"
	"net/http"
	"strings"

	"github.com/ant0ine/go-json-rest/rest"
)

// ErrorBodyMiddleware rewrites the {"Error": ...} bodies produced by
// go-json-rest itself (unknown routes, unmatched methods, content type
// rejections, recovered panics) into ErrorResponse.
type ErrorBodyMiddleware struct{}

// MiddlewareFunc makes ErrorBodyMiddleware implement the Middleware interface.
func (mw *ErrorBodyMiddleware) MiddlewareFunc(h rest.HandlerFunc) rest.HandlerFunc {
	return func(w rest.ResponseWriter, r *rest.Request) {
		h(&errorBodyResponseWriter{ResponseWriter: w}, r)
	}
}

// StatusMessage is the error message reported for a status code.
func StatusMessage(code int) string {
	switch code {
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusUnprocessableEntity:
		return MsgUnprocessable
	case http.StatusServiceUnavailable:
		return MsgServiceUnavailable
	case http.StatusInternalServerError:
		return MsgInternal
	}
	return strings.ToLower(http.StatusText(code))
}

type errorBodyResponseWriter struct {
	rest.ResponseWriter
	statusCode int
}

func (w *errorBodyResponseWriter) WriteHeader(code int) {
	if w.statusCode == 0 {
		w.statusCode = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *errorBodyResponseWriter) WriteJson(v interface{}) error {
	if body, ok := v.(map[string]string); ok &&
		len(body) == 1 && w.statusCode >= http.StatusBadRequest {
		if _, ok := body[rest.ErrorFieldName]; ok {
			v = ErrorResponse{
				Success: false,
				Error:   w.statusCode,
				Message: StatusMessage(w.statusCode),
			}
		}
	}
	return w.ResponseWriter.WriteJson(v)
}

// Provided in order to implement the http.ResponseWriter interface.
func (w *errorBodyResponseWriter) Write(b []byte) (int, error) {
	writer := w.ResponseWriter.(http.ResponseWriter)
	return writer.Write(b)
}

// Provided in order to implement the http.Flusher interface.
func (w *errorBodyResponseWriter) Flush() {
	flusher := w.ResponseWriter.(http.Flusher)
	flusher.Flush()
}

// Provided in order to implement the http.CloseNotifier interface.
func (w *errorBodyResponseWriter) CloseNotify() <-chan bool {
	notifier := w.ResponseWriter.(http.CloseNotifier)
	return notifier.CloseNotify()
}

// Provided in order to implement the http.Hijacker interface.
func (w *errorBodyResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker := w.ResponseWriter.(http.Hijacker)
	return hijacker.Hijack()
}
