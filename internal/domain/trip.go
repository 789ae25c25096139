package domain

import (
	"strings"
	"time"
)

// TransportType is the main way of getting to the destination
type TransportType string

const (
	TransportPlane TransportType = "plane"
	TransportTrain TransportType = "train"
	TransportShip  TransportType = "ship"
	TransportBus   TransportType = "bus"
	TransportWalk  TransportType = "walk"
	TransportOther TransportType = "other"
)

// ParseTransportType maps free text onto the closed transport enum.
// Anything unrecognised becomes TransportOther.
func ParseTransportType(s string) TransportType {
	switch t := TransportType(strings.ToLower(strings.TrimSpace(s))); t {
	case TransportPlane, TransportTrain, TransportShip, TransportBus, TransportWalk:
		return t
	default:
		return TransportOther
	}
}

// TripInput describes a journey to recommend packing items for
type TripInput struct {
	Themes        []string      `json:"themes" validate:"required,min=1,dive,required"`
	Destination   string        `json:"destination" validate:"required"`
	StartDate     time.Time     `json:"startDate" validate:"required"`
	EndDate       time.Time     `json:"endDate" validate:"required,gtefield=StartDate"`
	TransportType TransportType `json:"transportType" validate:"oneof=plane train ship bus walk other"`
}

// Normalize trims the destination, drops repeated themes while keeping the
// order they were given in, and maps the transport onto the closed enum.
func (t TripInput) Normalize() TripInput {
	out := t
	out.Destination = strings.TrimSpace(t.Destination)
	out.TransportType = ParseTransportType(string(t.TransportType))

	seen := make(map[string]struct{}, len(t.Themes))
	out.Themes = make([]string, 0, len(t.Themes))
	for _, theme := range t.Themes {
		theme = strings.TrimSpace(theme)
		if _, dup := seen[theme]; dup {
			continue
		}
		seen[theme] = struct{}{}
		out.Themes = append(out.Themes, theme)
	}

	return out
}
