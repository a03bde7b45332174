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
	"runtime"
)

var (
	// set with -ldflags "-X main.Commit=..." at build time
	Commit      string
	Tag         string
	Branch      string
	BuildNumber string
)

func CreateVersionString() string {
	version := Tag
	if version == "" {
		version = "unknown"
		if Commit != "" {
			version = fmt.Sprintf("%s_%s", Branch, Commit)
		}
	}
	if BuildNumber != "" {
		version = fmt.Sprintf("%s (build %s)", version, BuildNumber)
	}
	return fmt.Sprintf("%s runtime: %s", version, runtime.Version())
}
