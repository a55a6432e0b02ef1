// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the users API.
//
// An [App] runs a single command (login, verify, list, get, register or
// version) through an [adapter.ServerAdapter] and prints the result as JSON.
package client
