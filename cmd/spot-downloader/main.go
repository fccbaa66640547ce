package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/spotget/spot-downloader/internal/config"
	"github.com/spotget/spot-downloader/internal/download"
	"github.com/spotget/spot-downloader/internal/platform"
	"github.com/spotget/spot-downloader/internal/runner"
	"github.com/spotget/spot-downloader/internal/ui"
)

// version is overridden at build time: -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.spotget.spot-downloader"
	AppName = "spotDL GUI Downloader"

	WindowWidth  = 800
	WindowHeight = 700
)

func main() {
	fmt.Printf("%s %s v%s starting...\n", ui.IconMusic, AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// The configured output directory must exist before the first run
	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetOutputDirectory()); err != nil {
		fmt.Printf("failed to ensure output dir: %v\n", err)
	}

	svc := download.NewService(runner.NewExecRunner())
	ui.NewRootUI(myWindow, myApp, svc)

	myWindow.ShowAndRun()
}
