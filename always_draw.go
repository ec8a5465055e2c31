//go:build alwaysdraw

package main

const AlwaysDraw = true
