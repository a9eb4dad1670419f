package main

import (
	"github.com/colorful-demo/commerce-gateway/internal/app"
	"github.com/colorful-demo/commerce-gateway/internal/server"
)

func main() {
	app.Invoke(
		server.StartServer,
	).Run()
}
