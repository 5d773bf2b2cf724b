//go:build gpu

package main

// Registers the gg GPU accelerator. Without a usable adapter gg logs a
// warning and keeps rendering on the CPU.
import _ "github.com/gogpu/gg/gpu"
