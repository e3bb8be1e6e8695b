package main

import "github.com/dzjyyds666/siq/cmd"

func main() {
	cmd.Execute()
}
