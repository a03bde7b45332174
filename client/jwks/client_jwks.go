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

package jwks

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/mendersoftware/go-lib-micro/apiclient"
	"github.com/pkg/errors"
)

const (
	URIJWKS = "/.well-known/jwks.json"
	// default request timeout, 10s
	defaultReqTimeout = time.Duration(10) * time.Second
)

var (
	ErrEmptyKeySet = errors.New("key set contains no keys")
)

// Config conveys client configuration
type Config struct {
	// full address of the key set document
	JWKSURL string
	// request timeout
	Timeout time.Duration
}

// Client fetches the JSON Web Key Set of the identity provider.
// Implements jwt.KeySetProvider.
type Client struct {
	conf   Config
	client apiclient.HttpRunner
}

func NewClient(conf Config) *Client {
	if conf.Timeout == 0 {
		conf.Timeout = defaultReqTimeout
	}

	return &Client{
		conf:   conf,
		client: &apiclient.HttpApi{},
	}
}

func (c *Client) WithHttpRunner(client apiclient.HttpRunner) *Client {
	return &Client{
		conf:   c.conf,
		client: client,
	}
}

func (c *Client) GetKeySet(ctx context.Context) (*jose.JSONWebKeySet, error) {
	req, err := http.NewRequest(http.MethodGet, c.conf.JWKSURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare request for the key set")
	}

	ctx, cancel := context.WithTimeout(ctx, c.conf.Timeout)
	defer cancel()

	rsp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "GET key set request failed")
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return nil, errors.Errorf(
			"GET key set request failed with unexpected status %v",
			rsp.StatusCode,
		)
	}

	set := &jose.JSONWebKeySet{}
	if err := json.NewDecoder(rsp.Body).Decode(set); err != nil {
		return nil, errors.Wrap(err, "error parsing key set")
	}
	if len(set.Keys) == 0 {
		return nil, ErrEmptyKeySet
	}

	return set, nil
}

// URLFromDomain returns the well-known key set address of an
// identity provider domain.
func URLFromDomain(domain string) string {
	base := domain
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	return JoinURL(base, URIJWKS)
}

func JoinURL(base, url string) string {
	url = strings.TrimPrefix(url, "/")
	if !strings.HasSuffix(base, "/") {
		base = base + "/"
	}
	return base + url
}
