// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the notes application runtime.
//
// It wires the local store, the note services, the list synchronizer, the
// background workers and the terminal UI into a single process lifecycle.
package client
