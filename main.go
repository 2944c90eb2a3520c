package main

import "transmart_relay/cmd"

func main() {
	cmd.Execute()
}
