package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON, requestID)
	authMiddleware := standardMiddleware.Append(app.JWTMiddleware)

	mux := pat.New()

	mux.Get("/health", standardMiddleware.ThenFunc(app.health))

	// Feed
	mux.Get("/feed", authMiddleware.ThenFunc(app.feedHandler.GetFeed))

	// Posts
	mux.Post("/post", authMiddleware.ThenFunc(app.postHandler.CreatePost))
	mux.Get("/post/:id", authMiddleware.ThenFunc(app.postHandler.GetPostByID))
	mux.Post("/post/:id/interactions", authMiddleware.ThenFunc(app.postHandler.CreateInteraction))
	mux.Post("/post/:id/comments", authMiddleware.ThenFunc(app.postHandler.CreateComment))

	// Settlement
	mux.Post("/post/:id/interactions/:interaction_id/confirm", authMiddleware.ThenFunc(app.settlementHandler.ConfirmInteraction))

	// Profile
	mux.Get("/profile", authMiddleware.ThenFunc(app.userHandler.GetProfile))
	mux.Put("/profile", authMiddleware.ThenFunc(app.userHandler.UpdateProfile))

	return mux
}
