package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"dojoboard/models"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags
	difficultyTag = "difficulty"
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = Validate.RegisterValidation(difficultyTag, validateDifficulty)
	_ = Validate.RegisterTranslation(difficultyTag, Translator,
		func(ut ut.Translator) error {
			return ut.Add(difficultyTag, "{0} must be one of Easy, Medium or Hard", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(difficultyTag, fe.Field())
			return t
		},
	)
}

// validateDifficulty accepts only the three enumerated tiers.
func validateDifficulty(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		return true
	}
	return false
}

// Check validates a struct and returns translated, human-readable messages.
// A nil return means the input is valid.
func Check(v interface{}) []string {
	if err := Validate.Struct(v); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return []string{err.Error()}
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fe.Translate(Translator))
		}
		return msgs
	}
	return nil
}
