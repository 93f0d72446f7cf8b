package main

import (
	"log"
	"os"

	"github.com/luscis/ifdhcp/cmd/api"
	"github.com/luscis/ifdhcp/cmd/api/v1"
)

func main() {
	api.Url = api.GetEnv("URL", api.Url)
	api.Token = api.GetEnv("TOKEN", api.Token)
	app := &api.App{}
	app.New()

	v1.Commands(app)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
