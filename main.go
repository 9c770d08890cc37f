// Package main is the entry point for the nbaroles CLI tool, which pulls
// NBA per-player season stats and clusters players into offensive roles.
package main

import "github.com/courtvision/nbaroles/cmd"

func main() {
	cmd.Execute()
}
