package main

import (
	"github.com/Temoho9984/CareerConnect-Backend/internal/bootstrap"
	pkg "github.com/Temoho9984/CareerConnect-Backend/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.LoadEnv()
	app := fx.New(
		pkg.EchoModules,
	)

	app.Run()
}
