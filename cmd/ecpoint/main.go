package main

import "github.com/smartcontractkit/ecgfp/cmd/ecpoint/cmd"

func main() {
	cmd.Execute()
}
