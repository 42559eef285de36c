package main

import (
	"inn/config"
	"inn/di"
	"inn/shared/logger"
)

// @title Inn API
// @version 1.0
// @description Hotel booking lifecycle and room availability service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
