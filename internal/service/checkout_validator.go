package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

var formValidate = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("card_expiry", func(fl validator.FieldLevel) bool {
		return cardExpiryPattern.MatchString(fl.Field().String())
	})
	return v
}

// cardDetails 卡支付校验字段，卡号与 CVC 只参与校验，不落库
type cardDetails struct {
	CardName   string `json:"card_name" validate:"required"`
	CardNumber string `json:"card_number" validate:"required,numeric,min=12,max=19"`
	Expiry     string `json:"expiry" validate:"required,card_expiry"`
	CVC        string `json:"cvc" validate:"required,numeric,min=3,max=4"`
}

// validateStruct 执行结构体校验，失败时返回带字段明细的 ValidationError
func validateStruct(kind error, value interface{}) error {
	err := formValidate.Struct(value)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	fields := make(map[string]string, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}
	return &ValidationError{Kind: kind, Fields: fields}
}

func mergeValidationErrors(kind error, errs ...error) error {
	merged := &ValidationError{Kind: kind, Fields: map[string]string{}}
	for _, err := range errs {
		if err == nil {
			continue
		}
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			return err
		}
		for field, tag := range validationErr.Fields {
			merged.Fields[field] = tag
		}
	}
	if len(merged.Fields) == 0 {
		return nil
	}
	return merged
}

// normalizeCardNumber 去掉卡号中的空格与连字符
func normalizeCardNumber(raw string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
}

func cardLast4(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
