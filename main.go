package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/marbledrones/assets"
	"github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/fonts"
	"github.com/automoto/marbledrones/scenes"
	"github.com/automoto/marbledrones/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current update
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewArenaScene(g, config.Match)
	} else {
		g.scene = scenes.NewLobbyScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	players := flag.Int("players", 0, "Local player count 1-4 (0 = saved or default)")
	matchFile := flag.String("config", "", "YAML match override file")
	skipMenu := flag.Bool("skipmenu", false, "Skip the lobby and start a match")
	debug := flag.Bool("debug", false, "Draw collision shapes and dash state")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Marble Drones")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Flags and the match file win over saved lobby choices
	if *matchFile != "" {
		f, err := config.LoadMatchFile(*matchFile)
		if err != nil {
			log.Printf("Warning: Could not load match file: %v", err)
		}
		config.Match.Apply(f)
	}
	if *players > 0 {
		config.Match.LocalPlayerCount = config.ClampPlayerCount(*players)
	}
	config.Debug.SkipMenu = config.Debug.SkipMenu || *skipMenu
	config.Debug.Overlay = config.Debug.Overlay || *debug

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := assets.LoadAssets(); err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
