// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It logs in through an [adapter.ServerAdapter], fetches the caller's
// assessments and renders them as a table.
package client
