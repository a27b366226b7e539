package main

import (
	"github.com/insulinpump/readings/api"
)

func main() {
	api.MainLoop()
}
