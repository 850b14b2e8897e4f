package main

import (
	"campus-activity-system/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
