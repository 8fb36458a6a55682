package main

import "github.com/docsight/docsight/internal/cmd"

func main() {
	cmd.Execute()
}
