package main

import "devstudio_backend/internal/app"

func main() {
	app.Run()
}
