package main

import (
	"kr-calendar/gui"
	"kr-calendar/logging"
)

func main() {
	defer logging.RecoverPanic("main")
	gui.Run()
}
