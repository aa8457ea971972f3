package main

import "agencyportal/internal/app"

func main() {
	app.Run()
}
