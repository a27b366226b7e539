package main

import (
	"github.com/insulinpump/readings/cmd/pumpctl/command"
)

func main() {
	command.Execute()
}
