package main

import "github.com/vortex/docx-compare/cmd/docx-compare/cmd"

func main() {
	cmd.Execute()
}
