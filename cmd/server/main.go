package main

import "simgaji/internal/app/server"

func main() {
	server.Run()
}
