// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPServer is returned by NewServer when there is no HTTP handler or
// listen address to serve the courses API on.
var errNoHTTPServer = errors.New("no HTTP server to run: handler or listen address missing")
