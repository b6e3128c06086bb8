package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LobbyUI holds the ebitenui interface for the match setup screen
type LobbyUI struct {
	UI    *ebitenui.UI
	Lobby *components.LobbyData

	OnStartMatch func()
	OnQuit       func()

	playersLabel *widget.Label
	arenaLabel   *widget.Label
	pickupsLabel *widget.Label
	deviceLabels [cfg.MaxLocalPlayers]*widget.Label
	statusLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewLobbyUI creates a new lobby UI with ebitenui
func NewLobbyUI(lobby *components.LobbyData, onStartMatch, onQuit func()) *LobbyUI {
	lui := &LobbyUI{
		Lobby:        lobby,
		OnStartMatch: onStartMatch,
		OnQuit:       onQuit,
	}

	lui.loadFonts()
	lui.buildUI()

	return lui
}

func (lui *LobbyUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	lui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	lui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	lui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (lui *LobbyUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("MARBLE DRONES", &lui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	contentContainer.AddChild(lui.buildSettingsContainer())
	contentContainer.AddChild(lui.buildDevicesContainer())
	contentContainer.AddChild(lui.buildButtonsContainer())

	lui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &lui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 100, 100, 255},
		}),
	)
	contentContainer.AddChild(lui.statusLabel)

	rootContainer.AddChild(contentContainer)

	lui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Widgets aren't validated yet; UpdateUI runs on the first Update
}

func (lui *LobbyUI) buildSettingsContainer() *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(3),
		)),
	)

	var row *widget.Container
	row, lui.playersLabel = lui.settingRow("Players:", func(dir int) {
		systems.CyclePlayerCount(lui.Lobby, dir)
		systems.RefreshLobbyDevices(lui.Lobby, systems.ConnectedPads())
	})
	container.AddChild(row)

	row, lui.arenaLabel = lui.settingRow("Arena:", func(dir int) {
		systems.CycleArena(lui.Lobby, dir)
	})
	container.AddChild(row)

	row, lui.pickupsLabel = lui.settingRow("Pickups:", func(dir int) {
		systems.CyclePickups(lui.Lobby, dir)
	})
	container.AddChild(row)

	return container
}

// settingRow builds "Title: value [<] [>]" and returns the value label.
func (lui *LobbyUI) settingRow(title string, cycle func(dir int)) (*widget.Container, *widget.Label) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &lui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	value := widget.NewLabel(
		widget.LabelOpts.Text("", &lui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(value)

	for _, step := range []struct {
		label string
		dir   int
	}{{"<", -1}, {">", 1}} {
		dir := step.dir
		row.AddChild(widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(24, 18)),
			widget.ButtonOpts.Image(lui.buttonImage()),
			widget.ButtonOpts.Text(step.label, &lui.smallFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{200, 200, 200, 255},
				Hover:   color.RGBA{255, 255, 255, 255},
				Pressed: color.RGBA{150, 150, 150, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				cycle(dir)
				lui.UpdateUI()
			}),
		))
	}

	return row, value
}

func (lui *LobbyUI) buildDevicesContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)

	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	for i := 0; i < cfg.MaxLocalPlayers; i++ {
		row := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 50, 255})),
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Padding(&padding),
				widget.RowLayoutOpts.Spacing(6),
			)),
		)
		row.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(fmt.Sprintf("P%d:", i+1), &lui.normalFace, &widget.LabelColor{
				Idle: cfg.PlayerColors.Colors[i],
			}),
		))
		lui.deviceLabels[i] = widget.NewLabel(
			widget.LabelOpts.Text("-", &lui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{180, 180, 180, 255},
			}),
		)
		row.AddChild(lui.deviceLabels[i])
		container.AddChild(row)
	}

	return container
}

func (lui *LobbyUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	container.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(lui.buttonImage()),
		widget.ButtonOpts.Text("Quit", &lui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if lui.OnQuit != nil {
				lui.OnQuit()
			}
		}),
	))

	container.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(lui.startButtonImage()),
		widget.ButtonOpts.Text("START", &lui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if lui.OnStartMatch != nil {
				lui.OnStartMatch()
			}
		}),
	))

	return container
}

func (lui *LobbyUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (lui *LobbyUI) startButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

// UpdateUI refreshes every label from the lobby state
func (lui *LobbyUI) UpdateUI() {
	systems.RefreshLobbyDevices(lui.Lobby, systems.ConnectedPads())

	if lui.playersLabel != nil {
		lui.playersLabel.Label = fmt.Sprintf("%d", lui.Lobby.PlayerCount)
	}
	if lui.arenaLabel != nil {
		lui.arenaLabel.Label = systems.ArenaName(lui.Lobby)
	}
	if lui.pickupsLabel != nil {
		lui.pickupsLabel.Label = fmt.Sprintf("%d per type", lui.Lobby.PickupsPerType)
	}

	unbound := 0
	for i, label := range lui.deviceLabels {
		if label == nil {
			continue
		}
		dev := lui.Lobby.Devices[i]
		switch {
		case i >= lui.Lobby.PlayerCount:
			label.Label = "-"
		case dev.Kind == components.DeviceNone:
			label.Label = "no device"
			unbound++
		case dev.Kind == components.DeviceKeyboard:
			label.Label = dev.Kind.String()
		default:
			label.Label = fmt.Sprintf("%s (%s)", dev.Kind, dev.Name)
		}
	}

	if lui.statusLabel != nil {
		lui.statusLabel.Label = ""
		if unbound > 0 {
			lui.statusLabel.Label = fmt.Sprintf("%d player(s) without a device will sit idle", unbound)
		}
	}
}

// Update runs the ebitenui update and keeps the device preview current
func (lui *LobbyUI) Update() {
	lui.UI.Update()
	if !lui.initialized {
		lui.initialized = true
	}
	lui.UpdateUI()
}
