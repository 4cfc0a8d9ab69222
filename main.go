package main

import "github.com/cabbabbage/vibble/build-tools/cmd"

func main() {
	cmd.Execute()
}
