package apperror

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

// Rule is a custom binding tag contributed by a module (e.g. leave_type).
type Rule struct {
	Tag string
	Fn  validator.Func
}

func Init(rules ...Rule) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// field names in errors follow the json tag (e.g. `json:"start_date"`)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, strings.TrimSpace(fl.Field().String()))
		return err == nil
	})

	for _, r := range rules {
		_ = v.RegisterValidation(r.Tag, r.Fn)
	}
}
