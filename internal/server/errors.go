// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errExportServerDisabled is returned by NewServer when there is nothing to
// serve: no handlers or no listen address.
var errExportServerDisabled = errors.New("export server is disabled")
