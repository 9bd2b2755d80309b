package api

import (
	"agencydesk-server/internal/auth"
	automationHandler "agencydesk-server/internal/automation/handler"
	queueHandler "agencydesk-server/internal/emailqueue/handler"
	"net/http"

	"github.com/gin-gonic/gin"
)

type API struct {
	router            *gin.RouterGroup
	authenticator     auth.Authenticator
	automationHandler automationHandler.Handler
	queueHandler      queueHandler.Handler
}

func New(router *gin.RouterGroup, authenticator auth.Authenticator, automationHandler automationHandler.Handler, queueHandler queueHandler.Handler) API {
	return API{
		router:            router,
		authenticator:     authenticator,
		automationHandler: automationHandler,
		queueHandler:      queueHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	// Worker endpoints invoked by the external scheduler, guarded by the
	// process secret rather than a user token.
	emailGroup := a.router.Group("/api/email")
	{
		emailGroup.GET("/process-queue", a.queueHandler.HandleProcessQueue)
		emailGroup.POST("/process-queue", a.queueHandler.HandleProcessQueue)
		emailGroup.GET("/check-config", a.queueHandler.HandleCheckConfig)
	}

	protectedGroup := a.router.Group("/api/v1", a.authenticator.HandleJWTMiddleware)
	{
		protectedGroup.GET("/email/templates", a.automationHandler.HandleListTemplates)
		protectedGroup.POST("/email/templates", a.automationHandler.HandleCreateTemplate)
		protectedGroup.PUT("/email/templates/:template_id", a.automationHandler.HandleUpdateTemplate)
		protectedGroup.DELETE("/email/templates/:template_id", a.automationHandler.HandleDeleteTemplate)

		protectedGroup.GET("/email/rules", a.automationHandler.HandleListRules)
		protectedGroup.POST("/email/rules", a.automationHandler.HandleCreateRule)
		protectedGroup.POST("/email/rules/:rule_id/toggle", a.automationHandler.HandleToggleRule)

		protectedGroup.GET("/email/settings", a.automationHandler.HandleGetSettings)
		protectedGroup.PUT("/email/settings", a.automationHandler.HandleUpdateSettings)

		protectedGroup.GET("/email/queue", a.queueHandler.HandleListQueue)
		protectedGroup.DELETE("/email/queue/:item_id", a.queueHandler.HandleCancelQueueItem)
		protectedGroup.GET("/email/logs", a.queueHandler.HandleListLogs)

		protectedGroup.POST("/invoices/send", a.queueHandler.HandleSendInvoice)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
