// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the application:
// identifier generation, the outbound HTTP client and HTTP response writers.
package utils
