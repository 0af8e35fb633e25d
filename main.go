package main

import "github.com/redactyl/seclab/cmd/seclab"

func main() { seclab.Execute() }
