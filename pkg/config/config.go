package config

// Config represents the window and render configuration for the viewer
type Config struct {
	ScreenWidth     int32
	ScreenHeight    int32
	FramesPerSecond int
	Title           string
}

// New is an optional constructor for Config, mainly for a friendlier API.
func New(screenWidth, screenHeight int32, fps int, title string) *Config {
	return &Config{
		ScreenWidth:     screenWidth,
		ScreenHeight:    screenHeight,
		FramesPerSecond: fps,
		Title:           title,
	}
}
