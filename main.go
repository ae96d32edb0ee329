// Package main is the entry point for the classmark CLI.
package main

import "classmark.dev/pkg/classmark/cmd"

func main() {
	cmd.Execute()
}
