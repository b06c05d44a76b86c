package form

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"campus-library/internal/model"
)

// DateLayout 借阅日期格式（与 <input type="date"> 一致）
const DateLayout = "2006-01-02"

// 提示文案沿用原表单的措辞
const (
	msgRequired      = "This field is required."
	msgInvalidChoice = "Not a valid choice."
	msgInvalidDate   = "Not a valid date value."
	msgTooLong       = "Field cannot be longer than %s characters."
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 错误中的字段名使用表单字段名
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "department", func(fl validator.FieldLevel) bool {
		return model.Department(fl.Field().String()).Valid()
	})
	mustRegister(v, "major", func(fl validator.FieldLevel) bool {
		return model.Major(fl.Field().String()).Valid()
	})
	mustRegister(v, "year", func(fl validator.FieldLevel) bool {
		_, ok := parseYear(fl.Field().String())
		return ok
	})
	mustRegister(v, "date", func(fl validator.FieldLevel) bool {
		_, err := parseDate(fl.Field().String())
		return err == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("注册校验规则 %s 失败: %v", tag, err))
	}
}

// check 执行结构体标签校验并转换为 FieldErrors
func check(s any) FieldErrors {
	errs := FieldErrors{}

	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add("form", err.Error())
		return errs
	}

	for _, fe := range verrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "max":
		return fmt.Sprintf(msgTooLong, fe.Param())
	case "date":
		return msgInvalidDate
	default:
		return msgInvalidChoice
	}
}

func parseYear(s string) (int, bool) {
	year, err := strconv.Atoi(s)
	if err != nil || !model.ValidYear(year) {
		return 0, false
	}
	return year, true
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
