package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/marbledrones/assets"
	"github.com/automoto/marbledrones/components"
	cfg "github.com/automoto/marbledrones/config"
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/automoto/marbledrones/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	// altitudeScale is how far up the screen one pixel of altitude lifts a sprite.
	altitudeScale = 0.6
	// cullPadding keeps sprites from popping at the viewport edges.
	cullPadding = 64.0
	gridSpacing = 64.0
	aimLength   = 40.0
)

var (
	drawOp       = &ebiten.DrawImageOptions{}
	shaderOp     = &ebiten.DrawRectShaderOptions{}
	marbleImage  *ebiten.Image
	squareImage  *ebiten.Image
	tintUniforms = map[string]any{}
)

var droneColors = map[loadout.DroneType]color.RGBA{
	loadout.DroneRocket: cfg.LightRed,
	loadout.DroneMortar: cfg.Orange,
	loadout.DroneSeeker: cfg.Magenta,
}

// DroneColor returns the color pickups, drones and projectiles of t are drawn in.
func DroneColor(t loadout.DroneType) color.RGBA {
	if c, ok := droneColors[t]; ok {
		return c
	}
	return cfg.White
}

// view maps world positions into one camera's part of the screen.
type view struct {
	dst    *ebiten.Image
	rect   image.Rectangle
	center gamemath.Vec2 // world point drawn at the middle of rect
	mask   uint32
}

func newView(screen *ebiten.Image, camera *components.CameraData) view {
	rect := camera.Viewport.Pixels(screen.Bounds().Dx(), screen.Bounds().Dy())
	return view{
		dst:    screen.SubImage(rect).(*ebiten.Image),
		rect:   rect,
		center: camera.Position.Add(camera.Offset),
		mask:   camera.CullingMask,
	}
}

// project returns the screen position of a world point raised by altitude.
func (v view) project(p gamemath.Vec2, altitude float64) (float32, float32) {
	x := float64(v.rect.Min.X) + float64(v.rect.Dx())/2 + p.X - v.center.X
	y := float64(v.rect.Min.Y) + float64(v.rect.Dy())/2 + p.Y - v.center.Y - altitude*altitudeScale
	return float32(x), float32(y)
}

// inView reports whether a world point is close enough to be drawn.
func (v view) inView(p gamemath.Vec2) bool {
	halfW := float64(v.rect.Dx())/2 + cullPadding
	halfH := float64(v.rect.Dy())/2 + cullPadding
	return math.Abs(p.X-v.center.X) <= halfW && math.Abs(p.Y-v.center.Y) <= halfH
}

// DrawSplitScreen renders the arena once per camera into its viewport.
func DrawSplitScreen(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.DividerColor)
	ensureImages()

	components.Camera.Each(ecs.World, func(cameraEntry *donburi.Entry) {
		v := newView(screen, components.Camera.Get(cameraEntry))

		drawFloor(ecs.World, v)
		drawWalls(ecs.World, v)
		drawShadows(ecs.World, v)
		drawPickups(ecs.World, v)
		drawMarbles(ecs.World, v)
		drawOverlays(ecs.World, v)
		drawDrones(ecs.World, v)
		drawProjectiles(ecs.World, v)
		drawParticles(ecs.World, v)
	})

	drawDividers(ecs.World, screen)
}

func ensureImages() {
	if marbleImage == nil {
		d := int(cfg.Marble.Radius * 2)
		marbleImage = ebiten.NewImage(d, d)
		r := float32(cfg.Marble.Radius)
		vector.FillCircle(marbleImage, r, r, r, cfg.White, true)
	}
	if squareImage == nil {
		squareImage = ebiten.NewImage(1, 1)
		squareImage.Fill(cfg.White)
	}
}

func drawFloor(w donburi.World, v view) {
	arenaW, arenaH := arenaSize(w)
	x, y := v.project(gamemath.Vec2{}, 0)
	vector.FillRect(v.dst, x, y, float32(arenaW), float32(arenaH), cfg.FloorColor, false)

	for gx := gridSpacing; gx < arenaW; gx += gridSpacing {
		x0, y0 := v.project(gamemath.Vec2{X: gx}, 0)
		vector.StrokeLine(v.dst, x0, y0, x0, y0+float32(arenaH), 1, cfg.ShadowColor, false)
	}
	for gy := gridSpacing; gy < arenaH; gy += gridSpacing {
		x0, y0 := v.project(gamemath.Vec2{Y: gy}, 0)
		vector.StrokeLine(v.dst, x0, y0, x0+float32(arenaW), y0, 1, cfg.ShadowColor, false)
	}
}

func drawWalls(w donburi.World, v view) {
	tags.Wall.Each(w, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		if o == nil {
			return
		}
		x, y := v.project(gamemath.Vec2{X: o.X, Y: o.Y}, 0)
		vector.FillRect(v.dst, x, y, float32(o.W), float32(o.H), cfg.WallColor, false)
	})
}

// drawShadows puts a ground shadow under everything that can leave the floor.
func drawShadows(w donburi.World, v view) {
	shadow := func(p gamemath.Vec2, r float64) {
		if !v.inView(p) {
			return
		}
		x, y := v.project(p, 0)
		vector.FillCircle(v.dst, x, y, float32(r), cfg.ShadowColor, true)
	}

	tags.Player.Each(w, func(e *donburi.Entry) {
		if o := components.Object.Get(e).Object; o != nil {
			shadow(objectCenter(o), cfg.Marble.Radius*0.9)
		}
	})
	pickupQuery.Each(w, func(e *donburi.Entry) {
		if o := components.Object.Get(e).Object; o != nil {
			shadow(objectCenter(o), cfg.Pickup.Size/2)
		}
	})
	droneQuery.Each(w, func(e *donburi.Entry) {
		shadow(components.Drone.Get(e).Position, cfg.Drone.Size/2)
	})
	projectileQuery.Each(w, func(e *donburi.Entry) {
		if o := components.Object.Get(e).Object; o != nil {
			shadow(objectCenter(o), o.W/2)
		}
	})
}

// drawSquare draws a rotated square of the given size centred on (x, y).
func drawSquare(dst *ebiten.Image, x, y float32, size, degrees float64, c color.RGBA, alpha float32) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-0.5, -0.5)
	drawOp.GeoM.Scale(size, size)
	drawOp.GeoM.Rotate(degrees * math.Pi / 180)
	drawOp.GeoM.Translate(float64(x), float64(y))
	drawOp.ColorScale.ScaleWithColor(c)
	drawOp.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(squareImage, drawOp)
}

func drawPickups(w donburi.World, v view) {
	pickupQuery.Each(w, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		if o == nil || !v.inView(objectCenter(o)) {
			return
		}
		p := components.Pickup.Get(e)
		x, y := v.project(objectCenter(o), p.Altitude)
		glow := float32(0.6 + 0.4*p.GlowLevel)
		drawSquare(v.dst, x, y, cfg.Pickup.Size, p.Rotation, DroneColor(p.Type), glow)
	})
}

func drawMarbles(w donburi.World, v view) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		if o == nil || !v.inView(objectCenter(o)) {
			return
		}
		player := components.Player.Get(e)
		marble := components.Marble.Get(e)
		x, y := v.project(objectCenter(o), marble.Altitude)

		scaleX, scaleY := 1.0, 1.0
		if e.HasComponent(components.SquashStretch) {
			ss := components.SquashStretch.Get(e)
			scaleX, scaleY = ss.ScaleX, ss.ScaleY
		}
		tint := [3]float32{1, 1, 1}
		if flash := components.Flash.Get(e); flash.Duration > 0 {
			tint = [3]float32{flash.R, flash.G, flash.B}
		}

		r := cfg.Marble.Radius
		geo := ebiten.GeoM{}
		geo.Translate(-r, -r)
		geo.Scale(scaleX, scaleY)
		geo.Translate(float64(x), float64(y))

		if assets.TintShader != nil {
			shaderOp.GeoM = geo
			shaderOp.ColorScale.Reset()
			shaderOp.ColorScale.ScaleWithColor(player.Color)
			shaderOp.Images[0] = marbleImage
			tintUniforms["Tint"] = tint[:]
			shaderOp.Uniforms = tintUniforms
			b := marbleImage.Bounds()
			v.dst.DrawRectShader(b.Dx(), b.Dy(), assets.TintShader, shaderOp)
		} else {
			drawOp.GeoM = geo
			drawOp.ColorScale.Reset()
			drawOp.ColorScale.ScaleWithColor(player.Color)
			drawOp.ColorScale.Scale(tint[0], tint[1], tint[2], 1)
			v.dst.DrawImage(marbleImage, drawOp)
		}

		// Rolling highlight
		spin := gamemath.FromAngle(marble.Heading.Angle()).Scale(math.Cos(marble.Spin) * r * 0.5)
		vector.FillCircle(v.dst, x+float32(spin.X), y+float32(spin.Y), float32(r*0.25), cfg.White, true)
	})
}

// drawOverlays draws the aim line and drone selection ring on each player's
// own layer, which only that player's camera shows.
func drawOverlays(w donburi.World, v view) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !gamemath.Visible(v.mask, player.Layer) {
			return
		}
		o := components.Object.Get(e).Object
		if o == nil {
			return
		}
		input := components.PlayerInput.Get(e)
		marble := components.Marble.Get(e)

		if GetPlayerAction(input, cfg.ActionAim).Pressed && len(player.Drones) > 0 {
			from := objectCenter(o)
			to := from.Add(aimDirection(input, marble).Scale(aimLength))
			x0, y0 := v.project(from, marble.Altitude)
			x1, y1 := v.project(to, marble.Altitude)
			vector.StrokeLine(v.dst, x0, y0, x1, y1, 1, player.Color, true)
		}

		if len(player.Drones) == 0 {
			return
		}
		sel := player.Drones[gamemath.ClampInt(player.Selected, 0, len(player.Drones)-1)]
		d := components.Drone.Get(sel)
		x, y := v.project(d.Position, d.Altitude)
		vector.StrokeCircle(v.dst, x, y, float32(cfg.Drone.Size), 1, cfg.HUD.SelectedColor, true)
	})
}

func drawDrones(w donburi.World, v view) {
	droneQuery.Each(w, func(e *donburi.Entry) {
		d := components.Drone.Get(e)
		if !v.inView(d.Position) {
			return
		}
		x, y := v.project(d.Position, d.Altitude)
		drawSquare(v.dst, x, y, cfg.Drone.Size, d.Rotation, DroneColor(d.Type), 1)
	})
}

func drawProjectiles(w donburi.World, v view) {
	projectileQuery.Each(w, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		if o == nil || !v.inView(objectCenter(o)) {
			return
		}
		p := components.Projectile.Get(e)
		x, y := v.project(objectCenter(o), p.Altitude)
		vector.FillCircle(v.dst, x, y, float32(o.W/2), DroneColor(p.Type), true)
	})
}

func drawParticles(w donburi.World, v view) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		for _, em := range components.WheelParticles.Get(e).All() {
			drawEmitter(v, em)
		}
	})
	components.Impact.Each(w, func(e *donburi.Entry) {
		drawEmitter(v, &components.Impact.Get(e).Emitter)
	})
}

func drawEmitter(v view, em *components.Emitter) {
	for i := range em.Particles {
		p := &em.Particles[i]
		if !v.inView(p.Position) {
			continue
		}
		life := 0.0
		if p.MaxLife > 0 {
			life = p.Life / p.MaxLife
		}
		x, y := v.project(p.Position, p.Altitude)
		r := float32(math.Max(0.5, p.Size/2*life))
		vector.FillCircle(v.dst, x, y, r, fade(p.Color, life), false)
	}
}

// fade scales a premultiplied color by f.
func fade(c color.RGBA, f float64) color.RGBA {
	f = gamemath.Clamp(f, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

// drawDividers outlines each viewport so the split is easy to read.
func drawDividers(w donburi.World, screen *ebiten.Image) {
	if cameraQuery.Count(w) < 2 {
		return
	}
	components.Camera.Each(w, func(e *donburi.Entry) {
		rect := components.Camera.Get(e).Viewport.Pixels(screen.Bounds().Dx(), screen.Bounds().Dy())
		vector.StrokeRect(screen,
			float32(rect.Min.X), float32(rect.Min.Y),
			float32(rect.Dx()), float32(rect.Dy()),
			2, cfg.DividerColor, false)
	})
}
