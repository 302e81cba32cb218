// Package main zoo API.
//
// @title           Zoo Backend API
// @version         1.0
// @description     Zoo management service (animals, tickets, bookings, auth).
// @BasePath        /
// @schemes         http
package main

import (
	"log/slog"
	"os"

	"zoobackend/app/echoServer"
	"zoobackend/config"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	e := echoServer.New(cfg, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "data_dir", cfg.DataDir, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
