package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"lightmap-viewer/config"
	"lightmap-viewer/core"
	"lightmap-viewer/internal/logger"
	"lightmap-viewer/internal/opengl"
	"lightmap-viewer/materials"
	"lightmap-viewer/renderer"
	"lightmap-viewer/scene"
)

func main() {
	if err := run(); err != nil {
		logger.Log.Error("viewer failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Sync()
}

// options are the command-line overrides on top of the config file.
type options struct {
	configPath string
	logLevel   string
	model      string
	assets     string
}

func parseFlags(args []string) (options, *pflag.FlagSet, error) {
	var o options
	set := pflag.NewFlagSet("viewer", pflag.ContinueOnError)
	set.StringVarP(&o.configPath, "config", "c", "assets/config.toml", "path to the TOML config file")
	set.StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	set.StringVarP(&o.model, "model", "m", "", "model to view, relative to the asset root")
	set.StringVar(&o.assets, "assets", "", "asset root directory")
	err := set.Parse(args)
	return o, set, err
}

// loadConfig reads the config file. A missing default file means defaults;
// a missing file named on the command line is an error.
func loadConfig(o options, flags *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || flags.Changed("config") {
			return cfg, err
		}
		cfg = config.Default()
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.model != "" {
		cfg.Assets.Model = o.model
	}
	if o.assets != "" {
		cfg.Assets.Root = o.assets
	}
	return cfg, cfg.Validate()
}

// modelPath resolves the configured model against the asset root.
func modelPath(a config.Assets) string {
	if scene.IsBuiltinModel(a.Model) || filepath.IsAbs(a.Model) {
		return a.Model
	}
	return filepath.Join(a.Root, a.Model)
}

func run() error {
	opts, flags, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts, flags)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		return err
	}
	log := logger.Log

	window, err := core.NewWindow(core.WindowConfig{
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		Title:         cfg.Window.Title,
		Resizable:     true,
		VSync:         cfg.Window.VSync,
		Fullscreen:    cfg.Window.Fullscreen,
		CaptureCursor: true,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	device, err := opengl.NewDevice(log)
	if err != nil {
		return err
	}
	defer device.Destroy()

	loader := materials.NewLoader(device, cfg.Assets.Root)
	lib := materials.NewLibrary(loader)
	if _, err := lib.LoadDir(filepath.Join(cfg.Assets.Root, cfg.Assets.Materials)); err != nil {
		return err
	}
	fallback, ok := lib.Get(cfg.Assets.DefaultMaterial)
	if !ok {
		log.Warn("default material not loaded; meshes without a material are skipped",
			zap.String("material", cfg.Assets.DefaultMaterial))
	}

	meshes, err := scene.LoadModel(modelPath(cfg.Assets))
	if err != nil {
		return err
	}
	s := scene.NewScene(meshes)
	s.Model = scene.ModelTransform(cfg.Scene.Scale, cfg.Scene.RotateX)
	s.AssignMaterials(lib, fallback)
	s.Upload(func(d core.MeshData) scene.Geometry {
		if g := device.UploadMesh(d); g != nil {
			return g
		}
		return nil
	})
	nMeshes, nTris := s.Stats()
	log.Info("scene ready",
		zap.String("model", cfg.Assets.Model),
		zap.Int("meshes", nMeshes),
		zap.Int("triangles", nTris),
		zap.Int("materials", len(s.Materials())),
		zap.Int("textures", loader.Cache.Len()))

	camCfg := scene.DefaultCameraConfig()
	camCfg.Position = mgl32.Vec3(cfg.Camera.Position)
	camCfg.Yaw = cfg.Camera.Yaw
	camCfg.Pitch = cfg.Camera.Pitch
	camCfg.Speed = cfg.Camera.Speed
	camCfg.Sensitivity = cfg.Camera.Sensitivity
	camCfg.FOV = cfg.Camera.FOV
	camCfg.Near = cfg.Camera.Near
	camCfg.Far = cfg.Camera.Far
	camera := scene.NewCamera(camCfg)

	re := renderer.NewRenderEngine(device, window.Width, window.Height)
	cc := cfg.Scene.ClearColor
	re.ClearColor = core.Color{R: cc[0], G: cc[1], B: cc[2], A: cc[3]}

	if cfg.Scene.Skybox {
		if env, ok := lib.EnvironmentMap(); ok {
			sky, err := device.NewSkybox(env)
			if err != nil {
				log.Warn("skybox disabled", zap.Error(err))
			} else {
				defer sky.Destroy()
				re.Background = sky
			}
		}
	}

	input := &InputController{}
	ApplyLightmapOnly(lib, input.LightmapOnly)
	var fps renderer.FrameCounter

	last := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		frame := now.Sub(last)
		last = now
		dt := float32(frame.Seconds())

		window.PollEvents()
		if input.Update(window, camera, lib, dt) {
			window.Close()
			break
		}
		dx, dy := window.MouseDelta()
		if dx != 0 || dy != 0 {
			camera.ProcessMouseMovement(float32(dx), float32(dy))
		}
		if sy := window.ScrollDelta(); sy != 0 {
			camera.ProcessMouseScroll(float32(sy))
		}

		re.Resize(window.Width, window.Height)
		re.Render(s, camera)
		window.SwapBuffers()

		if rate, ok := fps.Tick(frame); ok {
			log.Debug("frame rate", zap.Float64("fps", rate), zap.Bool("lightmapOnly", input.LightmapOnly))
			window.SetTitle(fmt.Sprintf("%s - %.0f fps", cfg.Window.Title, rate))
		}
	}
	return nil
}
