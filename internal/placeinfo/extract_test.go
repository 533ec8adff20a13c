package placeinfo

import (
	"errors"
	"testing"

	"github.com/dungpa45/5-star-rating/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want models.PlaceDescriptor
	}{
		{
			name: "Name from path and coordinates from q",
			url:  "https://www.google.com/maps/place/Pho+24?q=10.776,106.700",
			want: models.PlaceDescriptor{
				Name:        strPtr("Pho 24"),
				Coordinates: &models.Coordinates{Lat: 10.776, Lng: 106.7},
			},
		},
		{
			name: "Percent-encoded name in path",
			url:  "https://www.google.com/maps/place/Caf%C3%A9+Gi%E1%BA%A3ng/@21.03,105.85,17z",
			want: models.PlaceDescriptor{Name: strPtr("Café Giảng")},
		},
		{
			name: "Encoded plus stays a plus",
			url:  "https://www.google.com/maps/place/A%2BB+Bistro",
			want: models.PlaceDescriptor{Name: strPtr("A+B Bistro")},
		},
		{
			name: "Negative coordinates with whitespace",
			url:  "https://www.google.com/maps?q=-33.8688,%20151.2093",
			want: models.PlaceDescriptor{Coordinates: &models.Coordinates{Lat: -33.8688, Lng: 151.2093}},
		},
		{
			name: "Encoded comma in coordinates",
			url:  "https://www.google.com/maps?q=48.8584%2C2.2945",
			want: models.PlaceDescriptor{Coordinates: &models.Coordinates{Lat: 48.8584, Lng: 2.2945}},
		},
		{
			name: "Name from q when path has no place segment",
			url:  "https://www.google.com/maps/search/?q=Ben+Thanh+Market",
			want: models.PlaceDescriptor{Name: strPtr("Ben Thanh Market")},
		},
		{
			name: "Path name wins over q name",
			url:  "https://www.google.com/maps/place/Pho+24?q=Something+Else",
			want: models.PlaceDescriptor{Name: strPtr("Pho 24")},
		},
		{
			name: "Place id from cid",
			url:  "https://www.google.com/maps?cid=1234567890&entry=ttu",
			want: models.PlaceDescriptor{PlaceID: strPtr("1234567890")},
		},
		{
			name: "Place id from entry",
			url:  "https://www.google.com/maps/place/Hue?entry=ttu",
			want: models.PlaceDescriptor{Name: strPtr("Hue"), PlaceID: strPtr("ttu")},
		},
		{
			name: "Malformed escape in q leaves name absent",
			url:  "https://www.google.com/maps?q=100%ZZ",
			want: models.PlaceDescriptor{},
		},
		{
			name: "Place segment without following name",
			url:  "https://www.google.com/maps/place/",
			want: models.PlaceDescriptor{},
		},
		{
			name: "Short link",
			url:  "https://maps.app.goo.gl/AbCdEf123",
			want: models.PlaceDescriptor{PlaceID: strPtr("AbCdEf123")},
		},
		{
			name: "Short link with trailing slash",
			url:  "https://maps.app.goo.gl/AbCdEf123/",
			want: models.PlaceDescriptor{PlaceID: strPtr("AbCdEf123")},
		},
		{
			name: "Short link ignores query",
			url:  "https://maps.app.goo.gl/XyZ?q=10.1,20.2&g_st=ic",
			want: models.PlaceDescriptor{PlaceID: strPtr("XyZ")},
		},
		{
			name: "Unrelated URL",
			url:  "https://example.com/place/Pho+24?q=10.776,106.700&cid=1",
			want: models.PlaceDescriptor{},
		},
		{
			name: "Mailto URL without host",
			url:  "mailto:someone@example.com",
			want: models.PlaceDescriptor{},
		},
		{
			name: "File URL with empty host",
			url:  "file:///etc/hosts",
			want: models.PlaceDescriptor{},
		},
		{
			name: "URN",
			url:  "urn:isbn:0451450523",
			want: models.PlaceDescriptor{},
		},
		{
			name: "Other Google service",
			url:  "https://www.google.com/search?q=pho",
			want: models.PlaceDescriptor{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractInvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "Empty string", url: ""},
		{name: "No scheme", url: "google.com/maps/place/Pho"},
		{name: "Plain text", url: "not a url"},
		{name: "Bad escape in path", url: "https://www.google.com/maps/%zz"},
		{name: "Control character", url: "https://www.google.com/maps/\x7f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.url)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidURL))
			assert.True(t, got.IsEmpty())
		})
	}
}

func TestExtractCoordinatesNeverSetName(t *testing.T) {
	urls := []string{
		"https://www.google.com/maps?q=0,0",
		"https://www.google.com/maps?q=1.5,-2.25",
		"https://www.google.com/maps/@?api=1&q=+10.0,+20.0",
	}

	for _, u := range urls {
		got, err := Extract(u)
		require.NoError(t, err)
		assert.NotNil(t, got.Coordinates, u)
		assert.Nil(t, got.Name, u)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	url := "https://www.google.com/maps/place/Pho+24?q=10.776,106.700&cid=42"

	first, err := Extract(url)
	require.NoError(t, err)
	second, err := Extract(url)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Указатели не должны разделяться между вызовами
	assert.NotSame(t, first.Name, second.Name)
}

func TestIsMapsURL(t *testing.T) {
	assert.True(t, IsMapsURL("https://www.google.com/maps/place/X"))
	assert.True(t, IsMapsURL("https://maps.app.goo.gl/abc"))
	assert.False(t, IsMapsURL("https://maps.google.com/?q=1,2"))
	assert.False(t, IsMapsURL("https://example.com"))
}
