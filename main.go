// Tarkov Map Assistant is a desktop app which shows the player position
// from Escape from Tarkov screenshots on interactive maps.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2/app"
	"github.com/hashicorp/go-retryablehttp"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/AAAAAAAAA9a/tarkov-app/internal/app/coordstore"
	"github.com/AAAAAAAAA9a/tarkov-app/internal/app/mapdata"
	"github.com/AAAAAAAAA9a/tarkov-app/internal/app/ui"
	"github.com/AAAAAAAAA9a/tarkov-app/internal/tarkovdata"
)

const appID = "io.github.aaaaaaaaa9a.tarkov-app"

// defined flags
var (
	levelFlag     logLevelFlag
	logFileFlag   = flag.Bool("logfile", true, "Write logs to a file instead of the console")
	uninstallFlag = flag.Bool("uninstall", false, "Uninstalls the app by deleting all user files")
	showDirsFlag  = flag.Bool("show-dirs", false, "Show directories where user data is stored")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
}

func main() {
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)
	fyneApp := app.NewWithID(appID)
	ad := newAppDirs(fyneApp)
	if *showDirsFlag {
		fmt.Printf("Data: %s\n", ad.data)
		fmt.Printf("Logs: %s\n", ad.log)
		fmt.Printf("Settings: %s\n", ad.settings)
		return
	}
	if *uninstallFlag {
		fmt.Print("Are you sure you want to uninstall this app and delete all user files (y/N)?")
		var input string
		fmt.Scanln(&input)
		if strings.ToLower(input) == "y" {
			if err := ad.deleteAll(); err != nil {
				log.Fatal(err)
			}
			fmt.Println("App uninstalled")
		} else {
			fmt.Println("Aborted")
		}
		return
	}
	if *logFileFlag {
		fn, err := ad.initLogFile()
		if err != nil {
			log.Fatal(err)
		}
		log.SetOutput(&lumberjack.Logger{
			Filename:   fn,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}
	dataDir, err := ad.initDataDir()
	if err != nil {
		log.Fatal(err)
	}

	store := coordstore.New(filepath.Join(dataDir, coordsFileName))
	store.EnsureReady()

	ms := mapdata.New(mapdata.Params{
		ConfigPath:           ad.configPath("map_config.json"),
		AdditionalConfigPath: ad.configPath("additional_maps.yaml"),
		MapsDir:              ad.mapsDir(),
		TarkovData:           loadTarkovData(ad),
	})

	rhc := retryablehttp.NewClient()
	rhc.Logger = slog.Default()
	rhc.ResponseLogHook = logResponse
	client := tarkovdata.NewClient(rhc)

	u := ui.NewBaseUI(fyneApp)
	u.CoordinateStore = store
	u.MapService = ms
	u.DataDir = ad.tarkovDataDir()
	u.UpdateMaps = func() error {
		if _, err := client.UpdateMaps(context.Background(), ad.tarkovDataDir()); err != nil {
			return err
		}
		td, err := tarkovdata.LoadMaps(ad.tarkovDataDir())
		if err != nil {
			return err
		}
		ms.SetTarkovData(td)
		return nil
	}
	slog.SetLogLoggerLevel(u.Settings.LogLevelSlog())
	u.Init()
	u.ShowAndRun()
}

// loadTarkovData loads the optional game metadata.
// The app works without it, just with less map information.
func loadTarkovData(ad appDirs) tarkovdata.Maps {
	candidates := []string{ad.tarkovDataDir()}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "data", tarkovDataFolderName))
	}
	dir, ok := tarkovdata.FindDataDir(candidates...)
	if !ok {
		slog.Warn("Tarkov data directory not found. Extended map information will not be available.")
		return nil
	}
	td, err := tarkovdata.LoadMaps(dir)
	if err != nil {
		slog.Warn("Failed to load tarkov data", "error", err)
		return nil
	}
	return td
}
