package entity

// Athlete is a read-only catalog record. Name is the identity key.
type Athlete struct {
	Name         string   `json:"name"`
	Nationality  string   `json:"nationality"`
	Sport        string   `json:"sport"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Socials      Socials  `json:"socials"`
	Achievements []string `json:"achievements"`
	BestResult   string   `json:"bestResult"`
}

// Socials are optional profile links
type Socials struct {
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Website   string `json:"website,omitempty"`
}
