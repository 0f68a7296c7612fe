//go:build debug

package game

const debugChecks = true
