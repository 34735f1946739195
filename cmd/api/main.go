package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "weldtrack-backend/internal/adapter/http"
	idemp "weldtrack-backend/internal/adapter/middleware"
	"weldtrack-backend/internal/adapter/repository/mysql"
	"weldtrack-backend/internal/config"
	"weldtrack-backend/internal/domain/claim"
	"weldtrack-backend/internal/domain/user"
	"weldtrack-backend/internal/infrastructure/cache"
	"weldtrack-backend/internal/infrastructure/db"
	"weldtrack-backend/internal/usecase/account"
	claimuc "weldtrack-backend/internal/usecase/claim"
	"weldtrack-backend/internal/usecase/review"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&claim.Claim{}, &user.User{}); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	claimRepo := mysql.NewClaimRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	claims := claimuc.NewUsecase(claimRepo, tx)
	reviews := review.NewUsecase(claimRepo, userRepo, tx)
	accounts := account.NewUsecase(userRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := accounts.EnsureSeedAdmin(ctx, cfg.SeedAdminPass); err != nil {
		log.Fatal(err)
	}

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(accounts)
	catalogH := httpadp.NewCatalogHandler()
	claimH := httpadp.NewClaimHandler(claims)
	reviewH := httpadp.NewReviewHandler(reviews, accounts)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	e.POST("/auth/register", authH.Register)
	e.POST("/auth/login", authH.Login)

	e.GET("/catalog/items", catalogH.ListItems)
	e.GET("/catalog/items/:item_id", catalogH.GetItem)

	guard := idemp.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	e.POST("/claims", claimH.SubmitClaim, guard)
	e.PUT("/claims/:claim_id", claimH.UpdateClaim, guard)
	e.GET("/claims", claimH.ListClaims)
	e.GET("/claims/applied", claimH.CheckApplied)
	e.GET("/claims/:claim_id", claimH.GetClaim)
	e.POST("/claims/draft", claimH.DraftClaim)
	e.POST("/claims/redistribute", claimH.Redistribute)

	e.POST("/claims/:claim_id/approve", reviewH.ApproveClaim)
	e.POST("/claims/:claim_id/reject", reviewH.RejectClaim)
	e.POST("/claims/:claim_id/reset", reviewH.ResetClaim)
	e.POST("/claims/:claim_id/comment", reviewH.SaveComment)

	e.GET("/users", reviewH.ListUsers)
	e.POST("/users/:user_id/approve", reviewH.ApproveUser)
	e.GET("/notifications", reviewH.Notifications)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
