package main

import (
	"github.com/gin-gonic/gin"
	"stake-chain.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	userHandler       *handlers.UserHandler
	investmentHandler *handlers.InvestmentHandler
	earningHandler    *handlers.EarningHandler
	referralHandler   *handlers.ReferralHandler
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", d.userHandler.Register)
			users.GET("/:address", d.userHandler.GetUser)
		}

		investments := api.Group("/investments")
		{
			investments.POST("", d.investmentHandler.RecordInvestment)
			investments.GET("/:userAddress", d.investmentHandler.ListInvestments)
		}

		earnings := api.Group("/earnings")
		{
			earnings.POST("", d.earningHandler.RecordEarning)
			earnings.GET("/:userAddress", d.earningHandler.ListEarnings)
		}

		referrals := api.Group("/referrals")
		{
			referrals.GET("/:userAddress", d.referralHandler.ListReferrals)
			referrals.GET("/:userAddress/tree", d.referralHandler.GetReferralTree)
		}
	}
}
