package main

import "github.com/amalmborg97/iosctl/client/cmd"

func main() {
	cmd.Execute()
}
