package data

// Fixed engine traits. The simulation renders into an off-screen viewport of
// ViewportWidth x ViewportHeight logical pixels which is then composited onto
// the real output at (ViewportOffsetX, ViewportOffsetY), decoupling the
// internal resolution from final display placement.
const (
	TileSize = 8

	ViewportWidthTiles  = 32
	ViewportHeightTiles = 20

	ViewportWidth  = ViewportWidthTiles * TileSize
	ViewportHeight = ViewportHeightTiles * TileSize

	ViewportOffsetX = 8
	ViewportOffsetY = 8

	EpisodeCount       = 4
	LevelsPerEpisode   = 8
	MenuMusicFile      = "MENUSNG2.IMF"
	StartingPlayerKind = "player"
)
