package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/logger"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.GoEnv, cfg.LogLevel)

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.AuditLog{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Validator生成
	userValidator := validator.NewUserValidator(userRepo)
	orderValidator := validator.NewOrderValidator()

	//Usecase生成
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager, auditRepo, orderValidator)
	orderFormUC := usecase.NewOrderFormUsecase(productRepo)
	orderStatsUC := usecase.NewOrderStatsUsecase(orderRepo)
	adminUserUC := usecase.NewAdminUserUsecase(userRepo, auditRepo, userValidator)
	productUC := usecase.NewProductUsecase(productRepo)
	auditUC := usecase.NewAuditLogUsecase(auditRepo)

	//Handler生成
	orderH := handler.NewAdminOrderHandler(cfg, adminOrderUC)
	formH := handler.NewOrderFormHandler(cfg, orderFormUC)
	statsH := handler.NewOrderStatsHandler(cfg, orderStatsUC)
	userH := handler.NewAdminUserHandler(cfg, adminUserUC)
	productH := handler.NewAdminProductHandler(cfg, productUC)
	schemaH := handler.NewSchemaHandler(cfg)
	auditH := handler.NewAdminAuditLogHandler(cfg, auditUC)

	//Server起動
	e := server.New(&log, orderH, formH, statsH, userH, productH, schemaH, auditH)

	log.Info().Str("port", cfg.Port).Msg("starting api server")
	if err := server.Start(e, ":"+cfg.Port); err != nil {
		panic(err)
	}
}
