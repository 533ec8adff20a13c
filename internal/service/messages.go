package service

// MessageKey идентифицирует пользовательское сообщение
type MessageKey string

const (
	MsgInvalidBody      MessageKey = "invalid_body"
	MsgBodyTooLarge     MessageKey = "body_too_large"
	MsgValidationFailed MessageKey = "validation_failed"
	MsgInvalidURL       MessageKey = "invalid_url"
	MsgGenerationFailed MessageKey = "generation_failed"
	MsgInternal         MessageKey = "internal"
)

var messages = map[string]map[MessageKey]string{
	"en": {
		MsgInvalidBody:      "Invalid request body.",
		MsgBodyTooLarge:     "Request body is too large.",
		MsgValidationFailed: "Please check the submitted data.",
		MsgInvalidURL:       "Please enter a valid Google Maps URL.",
		MsgGenerationFailed: "Failed to generate review, please try again later.",
		MsgInternal:         "Something went wrong on the server.",
	},
	"vi": {
		MsgInvalidBody:      "Dữ liệu yêu cầu không hợp lệ.",
		MsgBodyTooLarge:     "Dữ liệu yêu cầu quá lớn.",
		MsgValidationFailed: "Vui lòng kiểm tra lại thông tin đã nhập.",
		MsgInvalidURL:       "Vui lòng nhập đúng URL Google Maps.",
		MsgGenerationFailed: "Không thể tạo đánh giá, vui lòng thử lại sau.",
		MsgInternal:         "Đã xảy ra lỗi máy chủ.",
	},
}

// сообщения об ошибках полей по тегу валидатора
var fieldMessages = map[string]map[string]string{
	"en": {
		"required":  "is required",
		"url":       "must be a valid URL",
		"mapsurl":   "must be a Google Maps URL (google.com/maps or maps.app.goo.gl)",
		"promptlen": "has an invalid length",
		"oneof":     "has an unsupported value",
	},
	"vi": {
		"required":  "là bắt buộc",
		"url":       "phải là URL hợp lệ",
		"mapsurl":   "phải là URL Google Maps (google.com/maps hoặc maps.app.goo.gl)",
		"promptlen": "có độ dài không hợp lệ",
		"oneof":     "có giá trị không được hỗ trợ",
	},
}

// Message возвращает сообщение на языке lang, при неизвестном языке - на английском
func Message(lang string, key MessageKey) string {
	if m, ok := messages[lang]; ok {
		return m[key]
	}
	return messages["en"][key]
}

func fieldMessage(lang, tag string) string {
	m, ok := fieldMessages[lang]
	if !ok {
		m = fieldMessages["en"]
	}
	if msg, ok := m[tag]; ok {
		return msg
	}
	return m["oneof"]
}
