package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"stockdash/api"
	"stockdash/internal/runcache"
	"stockdash/pkg/simbackend"
)

func main() {
	backendUrl := os.Getenv("STOCKDASH_BACKEND_URL")
	if backendUrl == "" {
		backendUrl = "http://localhost:3001"
	}

	port := 3009
	if p := os.Getenv("STOCKDASH_PORT"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			log.Fatal(err)
		}
		port = parsed
	}

	apiHandler := api.ApiHandler{
		SimClient: simbackend.Client{
			HttpClient: http.DefaultClient,
			BaseUrl:    backendUrl,
		},
		RunCache:  runcache.New(),
		JwtSecret: os.Getenv("STOCKDASH_JWT_SECRET"),
	}

	err := apiHandler.StartApi(port)
	if err != nil {
		log.Fatal(err)
	}
}
