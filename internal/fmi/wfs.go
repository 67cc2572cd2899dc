package fmi

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Internal types for FMI WFS 2.0 responses. Forecast stored queries
// return one WaterML MeasurementTimeseries per requested parameter,
// identified by a gml:id of the form "mts-1-1-<Parameter>".

type wfsResponse struct {
	XMLName xml.Name    `xml:"FeatureCollection"`
	Members []wfsMember `xml:"member"`
}

type wfsMember struct {
	Series measurementTimeseries `xml:"PointTimeSeriesObservation>result>MeasurementTimeseries"`
}

type measurementTimeseries struct {
	ID     string     `xml:"id,attr"`
	Points []tvpPoint `xml:"point"`
}

type tvpPoint struct {
	Time  string `xml:"MeasurementTVP>time"`
	Value string `xml:"MeasurementTVP>value"`
}

func (p tvpPoint) float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(p.Value), 64)
}

// parseWFS decodes a WFS feature collection from r.
func parseWFS(r io.Reader) (*wfsResponse, error) {
	var resp wfsResponse
	if err := xml.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decoding WFS response: %w", err)
	}
	return &resp, nil
}

// pointsFor returns the time-value pairs of the series for a parameter,
// or nil when the response has no such series.
func (r *wfsResponse) pointsFor(parameter string) []tvpPoint {
	suffix := "-" + parameter
	for _, member := range r.Members {
		if strings.HasSuffix(member.Series.ID, suffix) {
			return member.Series.Points
		}
	}
	return nil
}
