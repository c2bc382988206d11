//go:build tools

package main

// Pins the swagger generator so `go run github.com/swaggo/swag/cmd/swag`
// works at a known version.
import (
	_ "github.com/swaggo/swag"
)
