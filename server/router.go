package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpHandler "vidtube/interfaces/http"
	"vidtube/interfaces/middleware"
)

type Handlers struct {
	Health       httpHandler.IHealthHandler
	User         httpHandler.IUserHandler
	Video        httpHandler.IVideoHandler
	Comment      httpHandler.ICommentHandler
	Like         httpHandler.ILikeHandler
	Subscription httpHandler.ISubscriptionHandler
	Playlist     httpHandler.IPlaylistHandler
	Tweet        httpHandler.ITweetHandler
	Dashboard    httpHandler.IDashboardHandler
}

func InitiateRouter(handlers Handlers, corsOrigins []string, accessTokenSecret string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	auth := middleware.Auth(accessTokenSecret)
	optionalAuth := middleware.OptionalAuth(accessTokenSecret)

	api := router.Group("/api/v1")

	api.GET("/healthcheck", handlers.Health.Health)

	users := api.Group("/users")
	{
		users.POST("/register", handlers.User.Register)
		users.POST("/login", handlers.User.Login)
		users.POST("/refresh-token", handlers.User.Refresh)
		users.POST("/logout", auth, handlers.User.Logout)
		users.POST("/change-password", auth, handlers.User.ChangePassword)
		users.GET("/current-user", auth, handlers.User.Me)
		users.PATCH("/update-account", auth, handlers.User.UpdateAccount)
		users.PATCH("/avatar", auth, handlers.User.UpdateAvatar)
		users.PATCH("/cover-image", auth, handlers.User.UpdateCoverImage)
		users.GET("/history", auth, handlers.User.WatchHistory)
		users.GET("/c/:username", auth, handlers.User.ChannelProfile)
	}

	videos := api.Group("/videos")
	{
		videos.GET("", optionalAuth, handlers.Video.List)
		videos.POST("", auth, handlers.Video.Publish)
		videos.GET("/:videoId", optionalAuth, handlers.Video.Get)
		videos.PATCH("/:videoId", auth, handlers.Video.Update)
		videos.DELETE("/:videoId", auth, handlers.Video.Delete)
		videos.PATCH("/toggle/publish/:videoId", auth, handlers.Video.TogglePublish)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/:videoId", optionalAuth, handlers.Comment.List)
		comments.POST("/:videoId", auth, handlers.Comment.Add)
		comments.PATCH("/c/:commentId", auth, handlers.Comment.Update)
		comments.DELETE("/c/:commentId", auth, handlers.Comment.Delete)
	}

	likes := api.Group("/likes", auth)
	{
		likes.POST("/toggle/v/:videoId", handlers.Like.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", handlers.Like.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", handlers.Like.ToggleTweetLike)
		likes.GET("/videos", handlers.Like.ListLikedVideos)
	}

	subscriptions := api.Group("/subscriptions", auth)
	{
		subscriptions.POST("/c/:channelId", handlers.Subscription.Toggle)
		subscriptions.GET("/c/:channelId", handlers.Subscription.ListSubscribers)
		subscriptions.GET("/u/:subscriberId", handlers.Subscription.ListSubscribedChannels)
	}

	playlists := api.Group("/playlist", auth)
	{
		playlists.POST("", handlers.Playlist.Create)
		playlists.GET("/user/:userId", handlers.Playlist.ListByUser)
		playlists.GET("/:playlistId", handlers.Playlist.Get)
		playlists.PATCH("/add/:videoId/:playlistId", handlers.Playlist.AddVideo)
		playlists.PATCH("/remove/:videoId/:playlistId", handlers.Playlist.RemoveVideo)
		playlists.PATCH("/:playlistId", handlers.Playlist.Update)
		playlists.DELETE("/:playlistId", handlers.Playlist.Delete)
	}

	tweets := api.Group("/tweets")
	{
		tweets.POST("", auth, handlers.Tweet.Create)
		tweets.GET("/user/:userId", optionalAuth, handlers.Tweet.ListByChannel)
		tweets.PATCH("/:tweetId", auth, handlers.Tweet.Update)
		tweets.DELETE("/:tweetId", auth, handlers.Tweet.Delete)
	}

	dashboard := api.Group("/dashboard", auth)
	{
		dashboard.GET("/stats", handlers.Dashboard.Stats)
		dashboard.GET("/videos", handlers.Dashboard.Videos)
	}

	return router
}
