package main

import "campushire_backend/internal/app"

func main() {
	app.Run()
}
