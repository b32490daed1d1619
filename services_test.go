package main

import (
	"testing"

	"go.uber.org/zap"
)

func TestLoadingScreenSurvivesFadeIn(t *testing.T) {
	s := newEbitenServices(zap.NewNop())

	// Level startup sequence as the orchestrator issues it, all before any
	// frame draws: cut to black, show the loading screen, fade back in.
	s.FadeOutScreen()
	s.ShowLoadingScreen("LOAD1.MNI")
	s.FadeInScreen()

	if s.fadeLevel != 1 {
		t.Fatal("fade-out must take effect immediately")
	}
	if s.loadingScreen != "LOAD1.MNI" {
		t.Fatal("loading screen cleared before it could be drawn")
	}

	// The overlay has to stay up for every frame of the fade-in.
	ticks := 0
	for ; ticks < 240 && s.fadeLevel > 0; ticks++ {
		s.update(frameDelta)
		if s.fadeLevel > 0 && s.loadingScreen == "" {
			t.Fatal("loading screen cleared mid fade-in")
		}
	}
	if ticks == 0 {
		t.Fatal("fade-in finished without a single visible frame")
	}
	if s.fadeLevel != 0 {
		t.Fatalf("fade never completed, level %v", s.fadeLevel)
	}
	if s.loadingScreen != "" {
		t.Error("loading screen not cleared after the fade-in completed")
	}
}

func TestShowLoadingScreenCancelsPendingClear(t *testing.T) {
	s := newEbitenServices(zap.NewNop())
	s.FadeOutScreen()
	s.ShowLoadingScreen("LOAD1.MNI")
	s.FadeInScreen()

	// A new loading screen request before the fade finishes must stick.
	s.ShowLoadingScreen("LOAD2.MNI")
	for i := 0; i < 240; i++ {
		s.update(frameDelta)
	}
	if s.loadingScreen != "LOAD2.MNI" {
		t.Errorf("loading screen = %q, want LOAD2.MNI", s.loadingScreen)
	}
}
