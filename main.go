package main

import (
	"os"
	"vincit.fi/asset-viewer/backend"
	"vincit.fi/asset-viewer/common"
	"vincit.fi/asset-viewer/common/logger"
	"vincit.fi/asset-viewer/ui/cli"
)

func main() {
	params := common.ParseParams()

	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	if params.RootPath() == "" {
		logger.Error.Fatal("Usage: asset-viewer [flags] <directory>")
	}

	stores, err := backend.InitializeStores(params.RootPath(), params.DatabaseFile())
	if err != nil {
		logger.Error.Fatal("Error opening database ", err)
	}
	defer stores.Close()

	brokers := backend.InitializeEventBrokers(params.EventBusQueueSize())
	services := backend.InitializeServices(params)

	ui := cli.NewUi(params, brokers, stores, services, os.Stdout)
	if err := ui.Init(); err != nil {
		logger.Error.Fatal("Could not initialize UI ", err)
	}
	if err := ui.Run(os.Stdin); err != nil {
		logger.Error.Print("Error while reading commands ", err)
	}
}
