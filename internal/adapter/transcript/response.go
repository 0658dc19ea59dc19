package transcript

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Wire types for the timedtext XML responses.

type trackListXML struct {
	XMLName xml.Name   `xml:"transcript_list"`
	Tracks  []trackXML `xml:"track"`
}

type trackXML struct {
	LangCode string `xml:"lang_code,attr"`
	Name     string `xml:"name,attr"`
	Kind     string `xml:"kind,attr"`
}

type captionsXML struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []string `xml:"text"`
}

func parseTrackList(body []byte) ([]Track, error) {
	var list trackListXML
	if err := xml.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode track list: %w", err)
	}

	tracks := make([]Track, 0, len(list.Tracks))
	for _, t := range list.Tracks {
		if t.LangCode == "" {
			continue
		}
		tracks = append(tracks, Track{
			Language:  strings.ToLower(t.LangCode),
			Name:      t.Name,
			Generated: t.Kind == "asr",
		})
	}
	return tracks, nil
}

// parseTrackText joins all caption segments into one line of plain text.
// XML decoding already resolves entities; segment-internal newlines are
// flattened to spaces.
func parseTrackText(body []byte) (string, error) {
	var captions captionsXML
	if err := xml.Unmarshal(body, &captions); err != nil {
		return "", fmt.Errorf("decode captions: %w", err)
	}

	parts := make([]string, 0, len(captions.Texts))
	for _, t := range captions.Texts {
		t = strings.Join(strings.Fields(t), " ")
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " "), nil
}
