package main

import "catalog-impex/cmd"

func main() {
	cmd.Execute()
}
