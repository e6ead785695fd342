package main

import (
	"os"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"spotadvisor/cmd/spotadvisor/app"
	"spotadvisor/pkg/signals"
)

func main() {
	hlog.SetLevel(hlog.LevelInfo)
	ctx := signals.SetupSignalHandler()
	if err := app.NewSpotAdvisorCommand(ctx).Execute(); err != nil {
		hlog.Error(err)
		os.Exit(1)
	}
}
