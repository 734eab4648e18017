package handler

import (
	"net/http"
	"sync"

	"vetclinic/config"
	"vetclinic/di"
	"vetclinic/shared/logger"
)

var (
	app     *di.App
	appOnce sync.Once
)

// Handler is the serverless entry point. The container is built on the first request
// and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	appOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.Configure(cfg)

		app = di.InitializeApp()
	})

	app.HTTP.Handler().ServeHTTP(w, r)
}
