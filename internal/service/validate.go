package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/dungpa45/5-star-rating/internal/models"
	"github.com/dungpa45/5-star-rating/internal/placeinfo"
	"github.com/go-playground/validator/v10"
)

// newValidator создает валидатор запросов с правилами mapsurl и promptlen
func newValidator(minLen, maxLen int) *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "mapsurl", func(fl validator.FieldLevel) bool {
		return placeinfo.IsMapsURL(fl.Field().String())
	})

	mustRegister(v, "promptlen", func(fl validator.FieldLevel) bool {
		p := fl.Field().String()
		if p == models.ExtractPlaceInfoPrompt {
			return true
		}
		n := utf8.RuneCountInString(p)
		return n >= minLen && n <= maxLen
	})

	return v
}

// mustRegister регистрирует правило; ошибка означает неверный тег или nil-функцию
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func (s *ReviewService) validateRequest(req models.ReviewRequest, lang string) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: []models.ErrorDetail{{Message: err.Error()}}}
	}

	fields := make([]models.ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.ErrorDetail{
			Field:   fe.Field(),
			Message: fe.Field() + " " + fieldMessage(lang, fe.Tag()),
		})
	}
	return &ValidationError{Fields: fields}
}
