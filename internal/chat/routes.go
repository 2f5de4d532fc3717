package chat

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, chatService ChatServiceAPI) {
	chatController := &ChatController{ChatService: chatService}

	chatGroup := r.Group("/api/chat")
	{
		chatGroup.GET("", chatController.GetHistory)
		chatGroup.POST("", chatController.Send)
		chatGroup.DELETE("", chatController.Clear)
		chatGroup.GET("/quick-actions", chatController.GetQuickActions)
	}
}
