package main

import (
	"image/color"
	"time"
)

const windowTitle = "L'asteroids"

// Drawing constants
const (
	lineWidth         = 1.0
	windowedSizeRatio = 0.9
)

// Color constants
var (
	colorBackground = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	colorHUD        = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	colorBanner     = color.NRGBA{R: 255, G: 80, B: 60, A: 255}
)

// UI constants
const (
	hudMarginX    = 10
	hudMarginY    = 20
	hudLineHeight = 16
)

// Profiling constants
const (
	tpsDropThreshold = 55.0
	profileWarmup    = 3 * time.Second
	profileCooldown  = 10 * time.Second
	profileDuration  = 5 * time.Second
)
