package main

import (
	"context"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akiftaseen/tool-set-app/internal/server"
	"github.com/akiftaseen/tool-set-app/migrations"
	"github.com/akiftaseen/tool-set-app/modules"
	"github.com/akiftaseen/tool-set-app/pkg/application"
	"github.com/akiftaseen/tool-set-app/pkg/configuration"
	"github.com/akiftaseen/tool-set-app/pkg/eventbus"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
	if err != nil {
		panic(err)
	}
	defer pool.Close()

	if err := migrations.Up(ctx, pool); err != nil {
		logger.Fatalf("failed to apply migrations: %v", err)
	}

	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		logger.Fatalf("failed to load modules: %v", err)
	}

	srv, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Pool:          pool,
	})
	if err != nil {
		logger.Fatalf("failed to build server: %v", err)
	}

	logger.WithField("address", conf.SocketAddress).Info("listening")
	if err := srv.Start(conf.SocketAddress); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
