package routes

import (
	userControllers "github.com/Rithvik0410/E-commerce-Incture/controllers/user"
	"github.com/Rithvik0410/E-commerce-Incture/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(r *gin.Engine, users *services.UserService) {
	group := r.Group("/users")
	{
		group.POST("", userControllers.CreateUser(users))
		group.GET("/:id", userControllers.GetUser(users))
	}
}
