package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts all protected routes on the engine. authMW runs
// before every handler; RequestIDMiddleware tags the whole chain.
func RegisterRoutes(r *gin.Engine, app App, authMW gin.HandlerFunc) {
	r.Use(RequestIDMiddleware())
	r.Use(authMW)

	r.POST("/checkins", PostCheckIn(app))
	r.GET("/checkins", GetCheckIns(app))
	r.GET("/checkins/review", GetWeeklyReview(app))

	r.POST("/notes", PostNote(app))
	r.GET("/notes", GetNotes(app))
	r.PUT("/notes/:id", PutNote(app))
	r.DELETE("/notes/:id", DeleteNote(app))

	r.POST("/contacts", PostContact(app))
	r.GET("/contacts", GetContacts(app))
	r.PUT("/contacts/:id", PutContact(app))
	r.DELETE("/contacts/:id", DeleteContact(app))
}
