package domain

type Review struct {
	Name         string `json:"name"`
	Date         string `json:"date"`
	Text         string `json:"text"`
	Rating       int    `json:"rating"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
	RelativeTime string `json:"relativeTime"`
}

type ReviewSummary struct {
	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"totalReviews"`
	Reviews      []Review `json:"reviews"`
}
