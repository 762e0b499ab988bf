// Package nav builds the bottom navigation bar. Highlighting is driven only
// by the current path.
package nav

type Item struct {
	Href   string `json:"href"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Bar is the navigation state embedded in every page response. Overlay is set
// on the feed, where the bar is drawn over the video.
type Bar struct {
	Items   []Item `json:"items"`
	Overlay bool   `json:"overlay"`
}

var items = []Item{
	{Href: "/", Label: "Feed"},
	{Href: "/search", Label: "Search"},
	{Href: "/bookings", Label: "Bookings"},
	{Href: "/profile", Label: "Profile"},
}

// Build marks the item whose href equals path exactly.
func Build(path string) Bar {
	bar := Bar{Items: make([]Item, len(items)), Overlay: path == "/"}
	for i, it := range items {
		it.Active = it.Href == path
		bar.Items[i] = it
	}
	return bar
}
