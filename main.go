package main

import "github.com/ruiseixasm/jsonmidikit/cmd"

func main() {
	cmd.Execute()
}
