package main

import "github.com/grantify/grant-management/cmd"

func main() {
	cmd.Execute()
}
