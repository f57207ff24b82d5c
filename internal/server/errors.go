// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoListenAddress = errors.New("server listen address is empty")
	errNilRouter       = errors.New("server router is nil")
)
