package main

import "github.com/jsphweid/midichord/cmd"

func main() {
	cmd.Execute()
}
