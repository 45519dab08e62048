package main

import "github.com/jsphweid/randprog/cmd"

func main() {
	cmd.Execute()
}
