// Package main is the entry point for the halobharat CLI.
package main

import "github.com/manvinortechnologies/HaloBharat-Customer-sub000/internal/cli"

func main() {
	cli.Execute()
}
