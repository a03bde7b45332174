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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// TestReqData records the last request received by a mock server.
type TestReqData struct {
	mu sync.Mutex

	Url    *url.URL
	Method string
	Header http.Header
	Count  int
}

func (d *TestReqData) Requests() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Count
}

// NewMockServer returns a server replying with status and body marshaled
// to JSON to every request.
func NewMockServer(status int, body interface{}) (*httptest.Server, *TestReqData) {
	rdata := &TestReqData{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		rdata.mu.Lock()
		rdata.Url = r.URL
		rdata.Method = r.Method
		rdata.Header = r.Header.Clone()
		rdata.Count++
		rdata.mu.Unlock()

		b, err := json.Marshal(body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if body != nil {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		if body != nil {
			_, _ = w.Write(b)
		}
	}))
	return srv, rdata
}
