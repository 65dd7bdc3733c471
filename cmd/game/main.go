// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	_ "net/http/pprof"
	"os"

	"go-circle-shooter/internal/app"
	"go-circle-shooter/internal/assets"
	"go-circle-shooter/internal/audio"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/logger"
	"go-circle-shooter/internal/state"
	"go-circle-shooter/internal/storage"
	"go-circle-shooter/internal/timer"
	"go-circle-shooter/internal/ui"
	"go-circle-shooter/pkg/render/canvas"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

const (
	settingsFile = "config.yaml"
	envFile      = ".env"
)

type AppGame struct {
	stateMachine *state.StateMachine
	game         *app.Game
	canvas       *canvas.Canvas
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.canvas.SetTarget(screen)
	a.stateMachine.Draw(a.canvas)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.game.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func main() {
	bootLog := logger.New("info", os.Stderr)

	settings, err := config.LoadSettings(settingsFile)
	if err != nil {
		bootLog.Fatal().Err(err).Str("file", settingsFile).Msg("failed to load settings")
	}
	if err := settings.ApplyEnv(envFile); err != nil {
		bootLog.Fatal().Err(err).Msg("failed to apply environment")
	}
	log := logger.New(settings.LogLevel, os.Stderr)

	statusStore := storage.NewStatusStore(settings.DataDir)
	snapshots := storage.NewSnapshotStore(settings.DataDir, log)

	game, err := app.NewGame(config.ScreenWidth, config.ScreenHeight, settings, timer.SystemClock{}, statusStore, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	hud := ui.NewHUD(language.English)
	hud.Attach(game.EventDispatcher)
	if settings.Audio.Enabled {
		audio.NewPlayer(settings.Audio.Volume, log).Attach(game.EventDispatcher)
	}

	restore(game, hud, statusStore, snapshots, log)
	game.EnableAutosave(snapshots, settings.Gameplay.SnapshotInterval, config.SnapshotsToKeep)

	fonts, err := assets.NewFontManager()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load font")
	}
	defer fonts.Close()

	sm := state.NewStateMachine()
	controls := state.NewControls(game, state.EbitenInput{}, nil)
	state.NewScreens(sm, game, controls, hud, language.English)

	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)
	if settings.PprofAddr != "" {
		srv := &http.Server{Addr: settings.PprofAddr}
		group.Go(func() error {
			log.Info().Str("addr", settings.PprofAddr).Msg("pprof server listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		group.Go(func() error {
			<-ctx.Done()
			return srv.Shutdown(context.Background())
		})
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Кадр не очищается: RenderSystem сам заливает его полупрозрачным цветом для шлейфа
	ebiten.SetScreenClearedEveryFrame(false)

	runErr := ebiten.RunGame(&AppGame{
		stateMachine: sm,
		game:         game,
		canvas:       canvas.New(fonts, config.HUDFontSize),
	})

	if _, err := snapshots.Save(game.Snapshot()); err != nil {
		log.Warn().Err(err).Msg("failed to save final snapshot")
	}
	cancel()
	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("debug server failed")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("game loop failed")
	}
}

// restore поднимает последний снимок и сохранённый статус.
// Битый снимок пропускается, битый статус — фатальная ошибка.
func restore(game *app.Game, hud *ui.HUD, statusStore *storage.StatusStore, snapshots *storage.SnapshotStore, log zerolog.Logger) {
	status, statusErr := statusStore.Load()
	if statusErr != nil && !errors.Is(statusErr, storage.ErrNotFound) {
		log.Fatal().Err(statusErr).Msg("failed to restore status")
	}

	snap, err := snapshots.Latest()
	switch {
	case err == nil:
		if err := game.Restore(snap); err != nil {
			log.Warn().Err(err).Msg("skipping snapshot")
		} else {
			hud.Set(game.Stats())
		}
	case !errors.Is(err, storage.ErrNotFound):
		log.Warn().Err(err).Msg("failed to read snapshots")
	}

	if statusErr == nil {
		game.RestoreStatus(status)
		log.Info().Stringer("status", status).Msg("status restored")
	}
}
