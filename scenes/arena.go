package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/marbledrones/assets"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/systems"
	"github.com/automoto/marbledrones/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one split-screen match
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	match        cfg.MatchConfig
	once         sync.Once
}

// NewArenaScene creates an arena scene for the given match setup
func NewArenaScene(sc SceneChanger, match cfg.MatchConfig) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, match: match}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	pause := systems.GetOrCreatePause(as.ecs)
	switch {
	case pause.Quit:
		as.sceneChanger.Quit()
	case pause.Restart:
		as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger, as.match))
	case pause.ExitToLobby:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		as.sceneChanger.ChangeScene(NewLobbyScene(as.sceneChanger))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())
	systems.GetOrCreateAudio(e.World)
	systems.GetOrCreatePause(e)
	systems.GetOrCreateSettingsMenu(e)

	// Audio and input run even when paused
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateCursorLock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePlayerInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSettingsMenu)

	pool := factory.NewPool(e)

	e.AddSystem(systems.WithGameplayChecks(systems.UpdateParticles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateMarbles))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdatePickups(pool)))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateDrones(pool)))
	e.AddSystem(systems.WithGameplayChecks(systems.NewUpdateProjectiles(pool)))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCameras))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	e.AddSystem(systems.ProcessEvents)

	e.AddRenderer(cfg.Default, systems.DrawSplitScreen)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	e.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	systems.RegisterEventHandlers(e)
	as.ecs = e

	arena, err := assets.Arena(as.match.Arena)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	if arena == nil {
		log.Fatalf("no arenas loaded")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if _, err := systems.SetupMatch(e, pool, arena, as.match, systems.ConnectedPads(), rng); err != nil {
		log.Printf("Warning: %v", err)
	}
}
