package main

import "github.com/razvp/payments-engine/cmd"

func main() {
	cmd.Execute()
}
