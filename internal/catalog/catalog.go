package catalog

import "time"

type Game struct {
	ID         int
	Name       string
	LastPlayed time.Duration // how long ago, relative to program start
	FPSGain    int
	BoostCount int
}

func Games() []Game {
	return []Game{
		{ID: 1, Name: "Mobile Legends", LastPlayed: 2 * time.Hour, FPSGain: 25, BoostCount: 45},
		{ID: 2, Name: "PUBG Mobile", LastPlayed: 24 * time.Hour, FPSGain: 30, BoostCount: 32},
		{ID: 3, Name: "Call of Duty", LastPlayed: 3 * 24 * time.Hour, FPSGain: 28, BoostCount: 28},
		{ID: 4, Name: "Genshin Impact", LastPlayed: 7 * 24 * time.Hour, FPSGain: 35, BoostCount: 21},
		{ID: 5, Name: "Free Fire", LastPlayed: 14 * 24 * time.Hour, FPSGain: 22, BoostCount: 16},
	}
}

// RecentGames are the shortcuts shown in the expanded overlay.
func RecentGames() []string {
	return []string{"PUBG Mobile", "Genshin Impact", "COD Mobile", "Mobile Legends"}
}

type Profile struct {
	Name    string
	Title   string
	Level   int
	Socials []Link
	Brands  []Link
}

type Link struct {
	Name   string
	Handle string
	URL    string
}

func DefaultProfile() Profile {
	return Profile{
		Name:  "Akira Hanji",
		Title: "Elite Booster",
		Level: 42,
		Socials: []Link{
			{Name: "TikTok", Handle: "@hanji.kuroda", URL: "https://tiktok.com/@hanji.kuroda"},
			{Name: "Facebook", Handle: "Hanji Kuroda", URL: "https://facebook.com"},
			{Name: "YouTube", Handle: "Sasuke Hanji", URL: "https://youtube.com"},
		},
		Brands: []Link{
			{Name: "ROG ASUS", URL: "https://www.asus.com"},
			{Name: "Black Shark", URL: "https://www.blackshark.com"},
			{Name: "RedMagic", URL: "https://www.redmagic.gg"},
		},
	}
}

// QuickActions are the home screen shortcuts.
func QuickActions() []string {
	return []string{"Battery Saver", "Game Mode", "Cool Down"}
}
