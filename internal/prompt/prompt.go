// Package prompt собирает текст запроса к AI из пользовательского prompt
// и метаданных места.
package prompt

import (
	"strconv"
	"strings"

	"github.com/dungpa45/5-star-rating/internal/models"
)

// SystemInstruction - системное сообщение для модели
const SystemInstruction = "You are a helpful assistant that generates authentic, natural-sounding reviews for Google Maps. " +
	"Use the provided place information to create detailed, specific reviews that sound like they were written " +
	"by real customers who have visited the location."

const (
	unknownName     = "Unknown"
	notAvailable    = "Not available"
	defaultLanguage = "vi"
	defaultStyle    = "friendly"
)

var languageNames = map[string]string{
	"vi": "Vietnamese (tiếng Việt)",
	"en": "English",
}

var styleDescriptions = map[string]string{
	"friendly":     "friendly and natural, like talking to a friend",
	"professional": "professional and objective, like a critic",
	"enthusiastic": "enthusiastic and excited, with lots of positive emotion",
	"concise":      "short and to the point, 1-2 sentences",
}

// Compose дополняет basePrompt блоком с информацией о месте.
// Длина результата не проверяется и не обрезается.
func Compose(basePrompt string, place *models.PlaceDescriptor, mapURL string) string {
	var b strings.Builder
	b.WriteString(basePrompt)

	if place.IsEmpty() {
		b.WriteString("\n\nURL: ")
		b.WriteString(mapURL)
		return b.String()
	}

	name := unknownName
	if place.Name != nil {
		name = *place.Name
	}

	location := notAvailable
	if place.Coordinates != nil {
		location = formatFloat(place.Coordinates.Lat) + ", " + formatFloat(place.Coordinates.Lng)
	}

	b.WriteString("\n\nPlace Information:\n")
	b.WriteString("Name: " + name + "\n")
	b.WriteString("Location: " + location + "\n")
	b.WriteString("URL: " + mapURL)

	return b.String()
}

// Requirements возвращает блок требований к языку и стилю отзыва.
// Неизвестные значения заменяются значениями по умолчанию.
func Requirements(language, style string) string {
	langName, ok := languageNames[language]
	if !ok {
		langName = languageNames[defaultLanguage]
	}
	styleDesc, ok := styleDescriptions[style]
	if !ok {
		style = defaultStyle
		styleDesc = styleDescriptions[defaultStyle]
	}

	length := "medium, 3-5 sentences"
	if style == "concise" {
		length = "very short"
	}

	var b strings.Builder
	b.WriteString("Review requirements:\n")
	b.WriteString("- Rating: 5 stars\n")
	b.WriteString("- Language: " + langName + "\n")
	b.WriteString("- Tone: " + styleDesc + "\n")
	b.WriteString("- Length: " + length + "\n")
	b.WriteString("1. Keep it natural, avoid mechanical repetition\n")
	b.WriteString("2. Highlight strengths without being too generic\n")
	b.WriteString("3. Optionally add 1-2 specific details (a great dish, good service, a nice space...)")
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
