package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	soundDir = "sounds/"
	logoDir  = "logo/"

	// BellSound is the cue played on round start and round end.
	BellSound = "bell.wav"
	// AppLogo is the application and tray icon.
	AppLogo = "boxtimer.png"
)

//go:embed sounds/*.wav
var soundFS embed.FS

//go:embed logo/*.png
var logoFS embed.FS

var soundCache sync.Map
var logoCache sync.Map

// Sound returns a Fyne resource for the given sound file.
func Sound(fileName string) (fyne.Resource, error) {
	return loadResource(soundFS, soundDir+fileName, &soundCache)
}

// Logo returns a Fyne resource for the given logo file.
func Logo(fileName string) (fyne.Resource, error) {
	return loadResource(logoFS, logoDir+fileName, &logoCache)
}

// MustLogo returns a Fyne resource or panics on error.
func MustLogo(fileName string) fyne.Resource {
	resource, err := Logo(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
