package console

import (
	"errors"

	"github.com/parcel-desk/internal/service"
)

const (
	msgInvalidPhone       = "Invalid phone number."
	msgInvalidEmail       = "Invalid email address."
	msgInvalidPositiveInt = "Invalid input. Please enter a positive integer."
	msgNotPositive        = "Value must be a positive integer."
	msgOrderNotFound      = "Order ID not found."
)

// mappedConsoleError 定义业务错误到用户提示的映射关系
type mappedConsoleError struct {
	target  error
	message string
}

var consoleErrorRules = []mappedConsoleError{
	{target: service.ErrDeliveryNotFound, message: msgOrderNotFound},
	{target: service.ErrHeaderMismatch, message: "The table header does not match the delivery layout. No changes were made."},
	{target: service.ErrSnapshotDisabled, message: "Snapshot export is disabled. Set snapshot.enabled in the config file."},
}

var validationFieldMessages = map[string]string{
	service.FieldPhone:    msgInvalidPhone,
	service.FieldEmail:    msgInvalidEmail,
	service.FieldQuantity: msgInvalidPositiveInt,
}

// ErrorMessage 将业务错误转换为面向用户的提示
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrValidation) {
		if message, ok := validationFieldMessages[service.ValidationField(err)]; ok {
			return message
		}
	}
	for _, rule := range consoleErrorRules {
		if errors.Is(err, rule.target) {
			return rule.message
		}
	}
	return "An error occurred: " + err.Error()
}
