package main

import (
	"github.com/12Danish/NextRepBackend-sub000/config"
	"github.com/12Danish/NextRepBackend-sub000/routes"
	"github.com/12Danish/NextRepBackend-sub000/utils"

	log "github.com/sirupsen/logrus"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()
	if err := utils.InitFirebase(); err != nil {
		log.WithError(err).Warn("firebase disabled, federated login unavailable")
	}

	r := routes.SetupRouter()
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
