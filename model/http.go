package model

type TrackSummary struct {
	Name     string `json:"name"`
	Channel  uint8  `json:"channel"`
	Program  uint8  `json:"program"`
	NumNotes int    `json:"num_notes"`
}

type ComposeResponseMeta struct {
	Tempo  int            `json:"tempo"`
	Beats  float64        `json:"beats"`
	Tracks []TrackSummary `json:"tracks"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
