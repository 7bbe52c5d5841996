// Package vimeo implements the client for the video-hosting metadata API.
package vimeo

// videoResponse mirrors the subset of the hosting provider's video payload the
// service consumes
type videoResponse struct {
	URI      string `json:"uri"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Pictures struct {
		Sizes []pictureSize `json:"sizes"`
	} `json:"pictures"`
	PlayerEmbedURL string      `json:"player_embed_url"`
	Files          []videoFile `json:"files"`
}

type pictureSize struct {
	Width int    `json:"width"`
	Link  string `json:"link"`
}

type videoFile struct {
	Quality string `json:"quality"`
	Type    string `json:"type"`
	Link    string `json:"link"`
}
