package models

import (
	"math"
	"strconv"
)

// AgeUnknown flags records whose recency could not be derived from any
// published field. Records carrying it are excluded whenever a finite
// age bound is active.
var AgeUnknown = AgeHours(math.Inf(1))

// AgeHours is a video's age in hours, derived from its human-readable
// published text. The unknown sentinel serializes as JSON null.
type AgeHours float64

func (a AgeHours) Unknown() bool {
	return math.IsInf(float64(a), 1)
}

func (a AgeHours) MarshalJSON() ([]byte, error) {
	if a.Unknown() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(a), 'f', -1, 64), nil
}

// NormalizedVideo is the single record shape every upstream item is
// flattened into. VideoID is the identity key; records without one are
// dropped before they reach a response.
type NormalizedVideo struct {
	VideoID         string   `json:"videoId"`
	Title           string   `json:"title"`
	Views           int64    `json:"views"`
	DurationSeconds int64    `json:"durationSeconds"`
	PublishedRaw    string   `json:"publishedRaw"`
	AgeHours        AgeHours `json:"ageHours"`
	Channel         string   `json:"channel"`
	ThumbnailURL    string   `json:"thumbnailUrl,omitempty"`
	Region          string   `json:"region"`
	URL             string   `json:"url"`
}
