package main

import "logbook-manager/cmd"

func main() {
	cmd.Execute()
}
