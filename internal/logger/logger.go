// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logger holds the package-scoped logger used across the dsa
// core. It defaults to a discard sink so the library is silent unless
// an embedder opts in.
package logger

import "github.com/getamis/sirius/log"

var logger = log.Discard()

// Logger returns the current package-scoped logger.
func Logger() log.Logger {
	return logger
}

// SetLogger replaces the package-scoped logger. Call once at process
// start; the core itself never calls this.
func SetLogger(l log.Logger) {
	logger = l
}
