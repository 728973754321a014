package main

import (
	"log"

	"pongrelay/api"
	"pongrelay/logger"
	"pongrelay/util"
)

func main() {
	util.InitValidator()

	config, err := util.LoadConfig()

	if err != nil {
		log.Fatal(err)
	}

	logg := logger.New(config)

	server := api.NewServer(config, logg)

	logg.Infof("server listening on port %v", config.Port)
	logg.Fatal(server.Start())
}
