package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/marbledrones/assets"
	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/systems"
	"github.com/automoto/marbledrones/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LobbyScene displays the match setup lobby using ebitenui
type LobbyScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	lobbyUI      *ui.LobbyUI
	lobbyData    *components.LobbyData
	once         sync.Once
	shouldStart  bool
	shouldQuit   bool
}

// NewLobbyScene creates a new lobby scene
func NewLobbyScene(sc SceneChanger) *LobbyScene {
	return &LobbyScene{sceneChanger: sc}
}

func (ls *LobbyScene) Update() {
	ls.once.Do(ls.configure)

	ls.ecs.Update()
	ls.lobbyUI.Update()

	if ls.shouldStart {
		ls.startMatch()
		return
	}
	if ls.shouldQuit {
		ls.sceneChanger.Quit()
	}
}

func (ls *LobbyScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ls.ecs == nil {
		return
	}
	ls.lobbyUI.UI.Draw(screen)
}

func (ls *LobbyScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())
	systems.GetOrCreateAudio(ls.ecs.World)
	ls.ecs.AddSystem(systems.UpdateAudio)

	entry := ls.ecs.World.Entry(ls.ecs.World.Create(components.Lobby))
	ls.lobbyData = components.Lobby.Get(entry)
	systems.InitLobby(ls.lobbyData, cfg.Match, assets.ArenaNames)

	ls.lobbyUI = ui.NewLobbyUI(
		ls.lobbyData,
		func() { ls.shouldStart = true },
		func() { ls.shouldQuit = true },
	)
}

// startMatch stores the lobby choices and switches to the arena
func (ls *LobbyScene) startMatch() {
	systems.PlaySFX(ls.ecs, cfg.SoundMenuSelect)

	match := systems.LobbyMatchConfig(ls.lobbyData, cfg.Match)
	cfg.Match = match
	systems.SaveMatchChoices(match)

	ls.sceneChanger.ChangeScene(NewArenaScene(ls.sceneChanger, match))
}
