package models

import (
	"database/sql/driver"
	"strings"

	"github.com/shopspring/decimal"
)

// Money 金额类型（整数金额落盘时不带小数位）
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal 从 decimal 创建金额
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{Decimal: amount.Round(2)}
}

// NewMoneyFromInt 从整数创建金额
func NewMoneyFromInt(amount int64) Money {
	return Money{Decimal: decimal.NewFromInt(amount)}
}

// ParseMoney 解析表格中的金额文本
func ParseMoney(text string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return Money{}, err
	}
	return NewMoneyFromDecimal(d), nil
}

// Value 用于数据库写入
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Round(2).Value()
}

// Scan 用于数据库读取
func (m *Money) Scan(value interface{}) error {
	if err := m.Decimal.Scan(value); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(2)
	return nil
}

// String 整数金额输出整数，否则保留 2 位小数
func (m Money) String() string {
	rounded := m.Decimal.Round(2)
	if rounded.IsInteger() {
		return rounded.StringFixed(0)
	}
	return rounded.StringFixed(2)
}
