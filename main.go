// Copyright 2026 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/urfave/cli"

	. "github.com/coffeeshop/drinks/config"
	"github.com/coffeeshop/drinks/store/mongo"
)

func main() {
	doMain(os.Args)
}

func doMain(args []string) {
	var debug bool
	var configPath string

	app := cli.NewApp()
	app.Usage = "Drinks menu service"
	app.Version = CreateVersionString()
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "config",
			Usage:       "Configuration `FILE`. Supports JSON, TOML, YAML and HCL formatted configs.",
			Destination: &configPath,
		},
		cli.BoolFlag{
			Name:  "dev",
			Usage: "Use development setup",
		},
		cli.BoolFlag{
			Name:        "debug",
			Usage:       "Enable debug logging",
			Destination: &debug,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "server",
			Usage:  "Run as server (default)",
			Action: runServer,
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "automigrate",
					Usage: "Run database migrations before starting.",
				},
			},
		},
		{
			Name:  "migrate",
			Usage: "Run migrations",
			Action: func(args *cli.Context) error {
				return commandMigrate(config.Config)
			},
		},
		{
			Name:  "reset",
			Usage: "Drop all the drinks and seed the default menu",
			Action: func(args *cli.Context) error {
				return commandReset(config.Config)
			},
		},
	}
	app.Action = runServer
	app.Before = func(args *cli.Context) error {
		log.Setup(debug)

		err := config.FromConfigFile(configPath, ConfigDefaults)
		if err != nil {
			return cli.NewExitError(
				fmt.Sprintf("error loading configuration: %s", err),
				1)
		}

		// Enable setting config values by environment variables
		config.Config.SetEnvPrefix("DRINKS")
		config.Config.AutomaticEnv()

		return nil
	}

	err := app.Run(args)
	if err != nil {
		log.NewEmpty().Fatal(err.Error())
	}
}

func runServer(args *cli.Context) error {
	devSetup := args.GlobalBool("dev")

	l := log.New(log.Ctx{})

	if devSetup {
		l.Infof("setting up development configuration")
		config.Config.Set(SettingMiddleware, EnvDev)
	}

	l.Printf("Drinks Service, version %s starting up",
		CreateVersionString())

	db, err := connectDataStore(config.Config, args.Bool("automigrate"))
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}

	ctx := context.Background()
	err = db.Migrate(ctx, mongo.DbVersion)
	if err != nil {
		return cli.NewExitError(
			fmt.Sprintf("failed to run migrations: %v", err),
			3)
	}

	err = RunServer(config.Config, db)
	if err != nil {
		return cli.NewExitError(err.Error(), 4)
	}
	return nil
}
