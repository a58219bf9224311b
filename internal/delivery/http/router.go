package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"photocatalog/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(photoController *controllers.PhotoController, userController *controllers.UserController) *http.ServeMux {
	mux := http.NewServeMux()

	// User routes
	mux.HandleFunc("POST /api/users", userController.CreateUser)

	// Photo routes
	mux.HandleFunc("POST /api/photos", photoController.SavePhoto)
	mux.HandleFunc("POST /api/photos/{photoID}/tags", photoController.AddTags)

	// Search routes
	mux.HandleFunc("GET /api/photos/search", photoController.SearchImages)
	mux.HandleFunc("GET /api/photos/tag/search", photoController.SearchByTag)
	mux.HandleFunc("GET /api/search-history", photoController.GetSearchHistory)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
