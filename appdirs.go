package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	xappdirs "github.com/chasinglogic/appdirs"
)

const (
	appName              = "tarkov-app"
	logFileName          = "tarkov-app.log"
	coordsFileName       = "coordinates.txt"
	tarkovDataFolderName = "tarkovdata"
	mapsFolderName       = "maps"
	configFolderName     = "config"
)

// appDirs represents the app's local directories for storing logs etc.
type appDirs struct {
	data     string
	log      string
	settings string
}

func newAppDirs(fyneApp fyne.App) appDirs {
	ad := xappdirs.New(appName)
	x := appDirs{
		data:     ad.UserData(),
		log:      ad.UserLog(),
		settings: fyneApp.Storage().RootURI().Path(),
	}
	return x
}

func (ad appDirs) deleteAll() error {
	for _, p := range []string{ad.log, ad.data, ad.settings} {
		if err := os.RemoveAll(p); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", p)
	}
	return nil
}

func (ad appDirs) initLogFile() (string, error) {
	if err := os.MkdirAll(ad.log, os.ModePerm); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", ad.log, logFileName), nil
}

func (ad appDirs) initDataDir() (string, error) {
	if err := os.MkdirAll(ad.data, os.ModePerm); err != nil {
		return "", err
	}
	return ad.data, nil
}

func (ad appDirs) tarkovDataDir() string {
	return filepath.Join(ad.data, tarkovDataFolderName)
}

func (ad appDirs) mapsDir() string {
	return filepath.Join(ad.data, mapsFolderName)
}

func (ad appDirs) configPath(filename string) string {
	return filepath.Join(ad.data, configFolderName, filename)
}
