package service

import (
	"regexp"
	"strconv"
	"strings"
)

// 泰国手机号：0 开头，第二位 6/8/9，共 10 位
var thaiPhonePattern = regexp.MustCompile(`^0[689]\d{8}$`)

// 本地部分允许任意文字的字母与数字，域名部分只接受 ASCII
var emailPattern = regexp.MustCompile(`^[\p{L}\p{N}_.-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidPhone 校验泰国手机号
func IsValidPhone(phone string) bool {
	return thaiPhonePattern.MatchString(phone)
}

// IsValidEmail 校验邮箱格式
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone 校验手机号，失败返回 ValidationError
func ValidatePhone(phone string) error {
	if !IsValidPhone(phone) {
		return &ValidationError{Field: FieldPhone, Value: phone}
	}
	return nil
}

// ValidateEmail 校验邮箱，失败返回 ValidationError
func ValidateEmail(email string) error {
	if !IsValidEmail(email) {
		return &ValidationError{Field: FieldEmail, Value: email}
	}
	return nil
}

// ParseQuantity 解析正整数数量
func ParseQuantity(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	quantity, err := strconv.Atoi(trimmed)
	if err != nil || quantity <= 0 {
		return 0, &ValidationError{Field: FieldQuantity, Value: text}
	}
	return quantity, nil
}
