package main

import "github.com/jsphweid/melodex/cmd"

func main() {
	cmd.Execute()
}
