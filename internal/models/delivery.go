package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/parcel-desk/internal/constants"
)

// DeliveryFieldCount 配送记录的列数
const DeliveryFieldCount = 15

// ErrRowFieldCount 行列数与表头不一致
var ErrRowFieldCount = errors.New("row field count mismatch")

// Delivery 配送记录
type Delivery struct {
	Date            string // 创建日期 YYYY-MM-DD
	OrderID         string // 订单号 OD + 5 位
	FullName        string // 收件人姓名
	Phone           string // 手机号
	Email           string // 邮箱
	DeliveryAddress string // 配送地址
	City            string // 城市
	PostalCode      string // 邮编
	ProductName     string // 商品名称
	Quantity        int    // 数量
	PaymentMethod   string // 支付方式
	TransactionID   string // 交易号 TX + 5 位
	TrackingNumber  string // 运单号 TN + 6 位
	DeliveryStatus  string // 配送状态
	Amount          Money  // 金额（创建时计算，之后不变）

	// 无法解析为数字时保留原始文本，回写时原样输出
	quantityText string
	amountText   string
	rawQuantity  bool
	rawAmount    bool
}

// QuantityText 返回数量的落盘文本
func (d Delivery) QuantityText() string {
	if d.rawQuantity {
		return d.quantityText
	}
	return strconv.Itoa(d.Quantity)
}

// AmountText 返回金额的落盘文本
func (d Delivery) AmountText() string {
	if d.rawAmount {
		return d.amountText
	}
	return d.Amount.String()
}

// SetQuantity 设置数量并清除原始文本
func (d *Delivery) SetQuantity(quantity int) {
	d.Quantity = quantity
	d.quantityText = ""
	d.rawQuantity = false
}

// ToRow 按表头顺序序列化
func (d Delivery) ToRow() []string {
	return []string{
		d.Date,
		d.OrderID,
		d.FullName,
		d.Phone,
		d.Email,
		d.DeliveryAddress,
		d.City,
		d.PostalCode,
		d.ProductName,
		d.QuantityText(),
		d.PaymentMethod,
		d.TransactionID,
		d.TrackingNumber,
		d.DeliveryStatus,
		d.AmountText(),
	}
}

// DeliveryFromRow 从表格行反序列化
func DeliveryFromRow(row []string) (Delivery, error) {
	if len(row) != DeliveryFieldCount {
		return Delivery{}, fmt.Errorf("%w: got %d, want %d", ErrRowFieldCount, len(row), DeliveryFieldCount)
	}
	d := Delivery{
		Date:            row[0],
		OrderID:         row[1],
		FullName:        row[2],
		Phone:           row[3],
		Email:           row[4],
		DeliveryAddress: row[5],
		City:            row[6],
		PostalCode:      row[7],
		ProductName:     row[8],
		PaymentMethod:   row[10],
		TransactionID:   row[11],
		TrackingNumber:  row[12],
		DeliveryStatus:  row[13],
	}
	if quantity, err := strconv.Atoi(strings.TrimSpace(row[9])); err == nil && strconv.Itoa(quantity) == row[9] {
		d.Quantity = quantity
	} else {
		d.quantityText = row[9]
		d.rawQuantity = true
	}
	if amount, err := ParseMoney(row[14]); err == nil && amount.String() == row[14] {
		d.Amount = amount
	} else {
		d.amountText = row[14]
		d.rawAmount = true
	}
	return d, nil
}

// ReceiptLine 收据中的一行
type ReceiptLine struct {
	Label string
	Value string
}

// ReceiptLines 按表头生成收据的字段/值对
func (d Delivery) ReceiptLines() []ReceiptLine {
	row := d.ToRow()
	lines := make([]ReceiptLine, 0, len(row))
	for i, value := range row {
		lines = append(lines, ReceiptLine{Label: constants.TableHeader[i], Value: value})
	}
	return lines
}
