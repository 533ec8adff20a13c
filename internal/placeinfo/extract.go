// Package placeinfo извлекает метаданные места из URL Google Maps.
// Разбор эвристический: редиректы коротких ссылок не разрешаются,
// сетевых обращений нет.
package placeinfo

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/dungpa45/5-star-rating/internal/models"
)

const (
	// ShortLinkMarker - признак короткой ссылки Google Maps
	ShortLinkMarker = "maps.app.goo.gl"
	// LongFormMarker - признак полной ссылки Google Maps
	LongFormMarker = "google.com/maps"

	placeSegment = "place"
)

var coordinatesPattern = regexp.MustCompile(`^\s*([+-]?\d+(?:\.\d+)?),\s*([+-]?\d+(?:\.\d+)?)\s*$`)

// IsMapsURL сообщает, содержит ли строка один из известных маркеров Google Maps
func IsMapsURL(rawURL string) bool {
	return strings.Contains(rawURL, ShortLinkMarker) || strings.Contains(rawURL, LongFormMarker)
}

// Extract разбирает URL и возвращает найденные метаданные места.
// URL, не относящийся к Google Maps, дает пустой дескриптор без ошибки.
// ErrInvalidURL возвращается только для синтаксически некорректной строки.
func Extract(rawURL string) (models.PlaceDescriptor, error) {
	var place models.PlaceDescriptor

	u, err := url.Parse(rawURL)
	if err != nil {
		return place, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" {
		return place, fmt.Errorf("%w: missing scheme in %q", ErrInvalidURL, rawURL)
	}

	switch {
	case strings.Contains(rawURL, ShortLinkMarker):
		place.PlaceID = lastSegment(u.EscapedPath())
	case strings.Contains(rawURL, LongFormMarker):
		extractLongForm(u, &place)
	}

	return place, nil
}

func extractLongForm(u *url.URL, place *models.PlaceDescriptor) {
	segments := strings.Split(u.EscapedPath(), "/")
	for i, segment := range segments {
		if segment == placeSegment && i+1 < len(segments) && segments[i+1] != "" {
			place.Name = decodeComponent(segments[i+1])
			break
		}
	}

	if raw, ok := rawQueryValue(u.RawQuery, "q"); ok && raw != "" {
		if value := decodeComponent(raw); value != nil {
			if coords, ok := parseCoordinates(*value); ok {
				place.Coordinates = coords
			} else if place.Name == nil {
				place.Name = value
			}
		}
	}

	query := u.Query()
	if cid := query.Get("cid"); cid != "" {
		place.PlaceID = &cid
	} else if entry := query.Get("entry"); entry != "" {
		place.PlaceID = &entry
	}
}

// decodeComponent заменяет '+' на пробел и декодирует percent-escape.
// При некорректном escape возвращает nil.
func decodeComponent(raw string) *string {
	decoded, err := url.PathUnescape(strings.ReplaceAll(raw, "+", " "))
	if err != nil {
		return nil
	}
	return &decoded
}

func parseCoordinates(value string) (*models.Coordinates, bool) {
	m := coordinatesPattern.FindStringSubmatch(value)
	if m == nil {
		return nil, false
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, false
	}
	lng, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil, false
	}
	return &models.Coordinates{Lat: lat, Lng: lng}, true
}

// rawQueryValue возвращает первое недекодированное значение параметра key
func rawQueryValue(rawQuery, key string) (string, bool) {
	for _, pair := range strings.Split(rawQuery, "&") {
		k, v, _ := strings.Cut(pair, "=")
		if k == key {
			return v, true
		}
	}
	return "", false
}

func lastSegment(path string) *string {
	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			id, err := url.PathUnescape(segments[i])
			if err != nil {
				id = segments[i]
			}
			return &id
		}
	}
	return nil
}
