package ingame

import (
	"go.uber.org/zap"

	"github.com/gh-fork-dump/RigelEngine/data"
	"github.com/gh-fork-dump/RigelEngine/loader"
	"github.com/gh-fork-dump/RigelEngine/renderer"
)

// ServiceProvider is the presentation backend the orchestrator talks to.
// Every call is synchronous fire-and-forget; no result is awaited.
type ServiceProvider interface {
	PlaySound(name string)
	PlayMusic(filename string)
	StopMusic()
	FadeOutScreen()
	FadeInScreen()
	ShowLoadingScreen(filename string)
	ShowDebugText(text string)
}

// Context bundles the external collaborators a level needs. The orchestrator
// keeps it for its whole lifetime; everything in it is borrowed.
type Context struct {
	Resources *loader.Loader
	Target    renderer.RenderTarget
	Services  ServiceProvider
	Log       *zap.Logger

	// PlayerModel, when set, seeds the level's starting player stats so
	// progress carries over from the previous level. It is copied, never
	// retained.
	PlayerModel *data.PlayerModel
}

// NopServices is a ServiceProvider that does nothing. Tests and headless
// runs use it in place of a real audio/presentation backend.
type NopServices struct{}

func (NopServices) PlaySound(string)         {}
func (NopServices) PlayMusic(string)         {}
func (NopServices) StopMusic()               {}
func (NopServices) FadeOutScreen()           {}
func (NopServices) FadeInScreen()            {}
func (NopServices) ShowLoadingScreen(string) {}
func (NopServices) ShowDebugText(string)     {}
