package main

import "github.com/cmmoran/overloadgen/cmd"

func main() {
	cmd.Execute()
}
