package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

const fadeDuration = 0.35

// ebitenServices is the window-side service provider. A fade-out cuts to
// black immediately, a fade-in animates over the following frames, loading
// screens and debug text are drawn as overlays, and audio requests are
// logged: there are no real audio assets to mix, the request boundary is
// what matters.
type ebitenServices struct {
	log *zap.Logger

	fadeLevel  float64 // 0 = fully visible, 1 = black
	fadeTarget float64

	loadingScreen string
	clearLoading  bool
	debugText     string
	currentMusic  string
}

func newEbitenServices(log *zap.Logger) *ebitenServices {
	return &ebitenServices{log: log}
}

func (s *ebitenServices) PlaySound(name string) {
	s.log.Debug("sound", zap.String("name", name))
}

func (s *ebitenServices) PlayMusic(filename string) {
	if filename == "" || filename == s.currentMusic {
		return
	}
	s.currentMusic = filename
	s.log.Info("music", zap.String("file", filename))
}

func (s *ebitenServices) StopMusic() {
	s.currentMusic = ""
}

func (s *ebitenServices) FadeOutScreen() {
	s.fadeLevel = 1
	s.fadeTarget = 1
}

// FadeInScreen only schedules the loading screen's removal: the overlay has
// to stay up through the animated fade so it is actually seen.
func (s *ebitenServices) FadeInScreen() {
	s.fadeTarget = 0
	s.clearLoading = s.loadingScreen != ""
}

func (s *ebitenServices) ShowLoadingScreen(filename string) {
	s.loadingScreen = filename
	s.clearLoading = false
}

func (s *ebitenServices) ShowDebugText(text string) {
	s.debugText = text
}

func (s *ebitenServices) update(dt float64) {
	step := dt / fadeDuration
	switch {
	case s.fadeLevel < s.fadeTarget:
		s.fadeLevel = min(s.fadeLevel+step, s.fadeTarget)
	case s.fadeLevel > s.fadeTarget:
		s.fadeLevel = max(s.fadeLevel-step, s.fadeTarget)
	}
	if s.clearLoading && s.fadeLevel == 0 {
		s.loadingScreen = ""
		s.clearLoading = false
	}
	s.debugText = ""
}

func (s *ebitenServices) draw(screen *ebiten.Image) {
	if s.debugText != "" {
		ebitenutil.DebugPrintAt(screen, s.debugText, 2, 2)
	}
	if s.fadeLevel > 0 {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		alpha := uint8(s.fadeLevel * 255)
		ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), color.RGBA{A: alpha})
	}
	// Above the fade overlay so it reads against the black.
	if s.loadingScreen != "" {
		ebitenutil.DebugPrintAt(screen, "LOADING "+s.loadingScreen, 2, 14)
	}
}
