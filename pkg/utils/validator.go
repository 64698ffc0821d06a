package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()
}

type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

// ValidateStruct memvalidasi payload berdasarkan tag `validate` dan
// mengembalikan daftar error dengan pesan bahasa Indonesia, atau nil.
func ValidateStruct(s interface{}) []*FieldError {
	var errs []*FieldError
	err := Validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element FieldError
			element.Field = err.Field()
			element.Tag = err.Tag()

			switch err.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("Kolom '%s' wajib diisi.", element.Field)
			case "min":
				element.Msg = fmt.Sprintf("Kolom '%s' harus memiliki minimal %s karakter/nilai.", element.Field, err.Param())
			case "max":
				element.Msg = fmt.Sprintf("Kolom '%s' harus memiliki maksimal %s karakter/nilai.", element.Field, err.Param())
			case "email":
				element.Msg = "Format email tidak valid."
			case "datetime":
				element.Msg = fmt.Sprintf("Kolom '%s' harus berupa tanggal dengan format %s.", element.Field, err.Param())
			case "gt":
				element.Msg = fmt.Sprintf("Kolom '%s' harus lebih besar dari %s.", element.Field, err.Param())
			case "oneof":
				element.Msg = fmt.Sprintf("Kolom '%s' harus salah satu dari: %s.", element.Field, err.Param())
			case "uuid4":
				element.Msg = fmt.Sprintf("Kolom '%s' harus berupa UUID yang valid.", element.Field)
			default:
				element.Msg = fmt.Sprintf("Kolom '%s' gagal validasi untuk tag '%s'.", element.Field, element.Tag)
			}
			errs = append(errs, &element)
		}
	}
	return errs
}
