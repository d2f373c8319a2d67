package main

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"restaurant-pos/config"
	httpapi "restaurant-pos/internal/api/http"
	"restaurant-pos/internal/service"
	"restaurant-pos/internal/storage"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	menuRepo := storage.NewMemoryMenu(storage.SeedMenuItems())
	couponRepo := storage.NewMemoryCoupons(storage.SeedCoupons())
	tableRepo := storage.NewMemoryTables(storage.SeedTables())

	var orderRepo service.OrderRepository = storage.NewMemoryOrders()
	if db := config.InitPostgres(); db != nil {
		pg, err := storage.NewPostgresOrders(db)
		if err != nil {
			logrus.WithError(err).Fatal("failed to prepare order archive")
		}
		orderRepo = pg
		logrus.Info("order archive: postgres")
	}

	var cache service.SessionCache
	if client := config.InitRedis(); client != nil {
		cache = storage.NewRedisCache(client, 24*time.Hour, 30*time.Second)
		logrus.Info("session cache: redis")
	}

	var publisher service.TicketPublisher
	if writer := config.NewKafkaWriter(cfg.KitchenTopic); writer != nil {
		publisher = storage.NewKafkaTicketPublisher(writer)
		logrus.WithField("topic", cfg.KitchenTopic).Info("kitchen tickets: kafka")
	}

	store := service.NewSessionStore()
	menuSvc := service.NewMenuService(menuRepo)
	couponSvc := service.NewCouponService(couponRepo)
	cartSvc := service.NewCartService(store, menuRepo, couponSvc, tableRepo, cache)
	tableSvc := service.NewTableService(tableRepo)
	orderSvc := service.NewOrderService(orderRepo, cartSvc, cache, publisher, cfg.PaymentDelay)

	handler := httpapi.NewHandler(menuSvc, couponSvc, cartSvc, tableSvc, orderSvc)
	router := httpapi.NewRouter(handler, cfg.RateLimitRPS, cfg.RateLimitBurst)

	logrus.WithField("port", cfg.Port).Info("pos server starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
