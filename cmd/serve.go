package cmd

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sched-sim/sched-sim/api"
)

var configPath string

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling API over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		viper.SetDefault("server.port", 8080)
		viper.SetDefault("scheduler.default_quantum", 2)

		if configPath != "" {
			viper.SetConfigFile(configPath)
			if err := viper.ReadInConfig(); err != nil {
				logrus.Fatalf("read config %s: %v", configPath, err)
			}
			logrus.Infof("loaded config from %s", viper.ConfigFileUsed())
		}

		port := viper.GetInt("server.port")
		quantum := viper.GetInt("scheduler.default_quantum")

		app := fiber.New(fiber.Config{
			AppName: "sched-sim",
		})
		api.NewHandler(quantum).Register(app)

		logrus.Infof("listening on :%d (default quantum %d)", port, quantum)
		if err := app.Listen(fmt.Sprintf(":%d", port)); err != nil {
			logrus.Fatalf("server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "Config file (yaml) with server.port and scheduler.default_quantum")

	rootCmd.AddCommand(serveCmd)
}
