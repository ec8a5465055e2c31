//go:build !alwaysdraw

package main

const AlwaysDraw = false
