// cubespin - a spinning wireframe cube for your terminal.
//
// Controls (interactive mode):
//
//	W/S or Up/Down    - Pitch torque
//	A/D or Left/Right - Yaw torque
//	Q/E               - Roll torque
//	Space             - Apply random impulse
//	P                 - Pause/resume the base spin
//	R                 - Reset orientation and zoom
//	+/-               - Zoom in/out
//	?                 - Toggle HUD overlay
//	Esc               - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"golang.org/x/term"

	"github.com/cubespin/cubespin/pkg/math3d"
	"github.com/cubespin/cubespin/pkg/models"
	"github.com/cubespin/cubespin/pkg/render"
)

const (
	defaultCols = 80
	defaultRows = 40

	// Radians per tick for the base spin.
	spinRate = 0.01

	// Camera offset bounds along the view axis. Below √6 a spun cube
	// corner can project outside the grid; see render.SpinTransform.
	minDistance = 2.5
	maxDistance = 20
)

// wireColor is the glyph foreground in interactive mode.
var wireColor = color.RGBA{0, 255, 128, 255}

var (
	targetFPS = flag.Int("fps", 33, "Target frames per second")
	gridCols  = flag.Int("cols", defaultCols, "Grid columns (plain mode)")
	gridRows  = flag.Int("rows", defaultRows, "Grid rows (plain mode)")
	plainMode = flag.Bool("plain", false, "Print rows instead of taking over the screen")
	maxFrames = flag.Uint64("frames", 0, "Stop after this many frames in plain mode (0 = run forever)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cubespin - spinning wireframe cube for the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cubespin [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Roll\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  P           - Pause\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if *targetFPS < 1 {
		*targetFPS = 1
	}

	var err error
	if *plainMode || !term.IsTerminal(int(os.Stdout.Fd())) {
		err = runPlain()
	} else {
		err = runInteractive()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runPlain drives the animator against the plain row sink, rewinding in
// place when stdout is a live terminal and appending frames otherwise.
func runPlain() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := render.NewRenderer(models.Cube(), *gridCols, *gridRows)
	animator := render.NewAnimator(renderer, spinRate, minDistance)
	sink := render.NewPlainRenderer(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))

	interval := time.Second / time.Duration(*targetFPS)
	return animator.Run(ctx, sink, interval, *maxFrames)
}

// SpinAxis tracks position and velocity for one rotation axis with
// spring-damped velocity decay.
type SpinAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewSpinAxis creates an axis with a harmonica spring for smooth decay.
func NewSpinAxis(fps int) SpinAxis {
	return SpinAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and decays velocity toward 0.
func (a *SpinAxis) Update() {
	// Wrap so arbitrarily long runs never grow the angle unbounded.
	a.Position = math.Mod(a.Position+a.Velocity, 2*math.Pi)
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// SpinState holds the cube orientation with harmonica spring physics
// plus the constant base spin around Y.
type SpinState struct {
	Pitch, Yaw, Roll SpinAxis
	Paused           bool
	fps              int
}

func NewSpinState(fps int) *SpinState {
	return &SpinState{
		Pitch: NewSpinAxis(fps),
		Yaw:   NewSpinAxis(fps),
		Roll:  NewSpinAxis(fps),
		fps:   fps,
	}
}

func (s *SpinState) Update() {
	if !s.Paused {
		s.Yaw.Position = math.Mod(s.Yaw.Position+spinRate, 2*math.Pi)
	}
	s.Pitch.Update()
	s.Yaw.Update()
	s.Roll.Update()
}

func (s *SpinState) ApplyImpulse(pitch, yaw, roll float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
	s.Roll.Velocity += roll
}

func (s *SpinState) Reset() {
	paused := s.Paused
	*s = *NewSpinState(s.fps)
	s.Paused = paused
}

// Transform builds the object-to-camera matrix for the current
// orientation and zoom.
func (s *SpinState) Transform(distance float32) math3d.Mat4 {
	return math3d.Translate(math3d.V3(0, 0, -distance)).
		Mul(math3d.RotateX(float32(s.Pitch.Position))).
		Mul(math3d.RotateY(float32(s.Yaw.Position))).
		Mul(math3d.RotateZ(float32(s.Roll.Position)))
}

// HUD renders an overlay with frame rate and status.
type HUD struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now()}
}

// UpdateFPS updates the FPS counter (call once per frame).
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD overlay directly to the terminal.
func (h *HUD) Render(width, height int, show, paused bool, distance float64) {
	const (
		reset     = "\x1b[0m"
		dim       = "\x1b[2m"
		bgBlack   = "\x1b[40m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	if !show {
		return
	}

	fmt.Printf("%s%s%s %.0f FPS · zoom %.1f %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, distance, reset)
	if paused {
		fmt.Printf("%s%s%s PAUSED %s", moveTo(1, max(width-8, 1)), bgBlack, fgYellow, reset)
	}

	hint := "space: spin · +/-: zoom · p: pause · r: reset · esc: quit"
	fmt.Print(moveTo(height, 1) + bgBlack + dim + " " + hint + " " + reset)
}

func runInteractive() error {
	terminal := uv.DefaultTerminal()

	width, height, err := terminal.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := terminal.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	terminal.EnterAltScreen()
	terminal.HideCursor()
	terminal.Resize(width, height)

	mesh := models.Cube()
	renderer := render.NewRenderer(mesh, width, height)
	frame := render.NewFrame(width, height)
	sink := render.NewTerminalRenderer(terminal, width, height, wireColor)

	spin := NewSpinState(*targetFPS)
	hud := NewHUD()
	showHUD := false
	distance := float32(minDistance)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Input state
	inputTorque := struct{ pitch, yaw, roll float64 }{}
	const torqueStrength = 3.0

	// Event handler
	go func() {
		for ev := range terminal.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				terminal.Erase()
				terminal.Resize(width, height)
				renderer = render.NewRenderer(mesh, width, height)
				frame = render.NewFrame(width, height)
				sink = render.NewTerminalRenderer(terminal, width, height, wireColor)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("w", "up"):
					inputTorque.pitch = -torqueStrength
				case ev.MatchString("s", "down"):
					inputTorque.pitch = torqueStrength
				case ev.MatchString("a", "left"):
					inputTorque.yaw = -torqueStrength
				case ev.MatchString("d", "right"):
					inputTorque.yaw = torqueStrength
				case ev.MatchString("q"):
					inputTorque.roll = -torqueStrength
				case ev.MatchString("e"):
					inputTorque.roll = torqueStrength
				case ev.MatchString("space"):
					spin.ApplyImpulse(
						(rand.Float64()-0.5)*1.5,
						(rand.Float64()-0.5)*1.5,
						(rand.Float64()-0.5)*1.5,
					)
				case ev.MatchString("p"):
					spin.Paused = !spin.Paused
				case ev.MatchString("r"):
					spin.Reset()
					distance = minDistance
				case ev.MatchString("+", "="):
					distance = math3d.Max(minDistance, distance-0.5)
				case ev.MatchString("-", "_"):
					distance = math3d.Min(maxDistance, distance+0.5)
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					showHUD = !showHUD
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputTorque.pitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputTorque.yaw = 0
				case ev.MatchString("q"), ev.MatchString("e"):
					inputTorque.roll = 0
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		terminal.ExitAltScreen()
		terminal.ShowCursor()
		terminal.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		// Apply input torque and decay it (key release events unreliable)
		spin.ApplyImpulse(
			inputTorque.pitch*dt,
			inputTorque.yaw*dt,
			inputTorque.roll*dt,
		)
		inputTorque.pitch *= 0.9
		inputTorque.yaw *= 0.9
		inputTorque.roll *= 0.9

		spin.Update()

		renderer.RenderInto(frame, spin.Transform(distance))
		if err := sink.Emit(frame); err != nil {
			cleanup()
			return fmt.Errorf("flush frame: %w", err)
		}

		// HUD overlay (always update FPS, render clears lines when HUD off)
		hud.UpdateFPS()
		hud.Render(width, height, showHUD, spin.Paused, float64(distance))

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
