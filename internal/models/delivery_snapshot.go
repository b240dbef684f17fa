package models

import "time"

// DeliverySnapshot 配送表快照（导出到数据库用于报表）
type DeliverySnapshot struct {
	ID              uint      `gorm:"primarykey" json:"id"`                            // 主键
	Date            string    `gorm:"type:varchar(20);index" json:"date"`              // 创建日期
	OrderID         string    `gorm:"type:varchar(20);index;not null" json:"order_id"` // 订单号（不保证唯一）
	FullName        string    `gorm:"type:varchar(200)" json:"full_name"`              // 收件人姓名
	Phone           string    `gorm:"type:varchar(32)" json:"phone"`                   // 手机号
	Email           string    `gorm:"type:varchar(200)" json:"email"`                  // 邮箱
	DeliveryAddress string    `gorm:"type:text" json:"delivery_address"`               // 配送地址
	City            string    `gorm:"type:varchar(100)" json:"city"`                   // 城市
	PostalCode      string    `gorm:"type:varchar(20)" json:"postal_code"`             // 邮编
	ProductName     string    `gorm:"type:varchar(200)" json:"product_name"`           // 商品名称
	Quantity        string    `gorm:"type:varchar(20)" json:"quantity"`                // 数量（原样文本）
	PaymentMethod   string    `gorm:"type:varchar(100)" json:"payment_method"`         // 支付方式
	TransactionID   string    `gorm:"type:varchar(20)" json:"transaction_id"`          // 交易号
	TrackingNumber  string    `gorm:"type:varchar(20);index" json:"tracking_number"`   // 运单号
	DeliveryStatus  string    `gorm:"type:varchar(100);index" json:"delivery_status"`  // 配送状态
	Amount          string    `gorm:"type:varchar(32)" json:"amount"`                  // 金额（原样文本）
	Position        int       `gorm:"not null;default:0" json:"position"`              // 在表格中的位置
	ExportedAt      time.Time `gorm:"index" json:"exported_at"`                        // 导出时间
}

// TableName 指定表名
func (DeliverySnapshot) TableName() string {
	return "delivery_snapshots"
}

// NewDeliverySnapshot 由配送记录生成快照行
func NewDeliverySnapshot(d Delivery, position int, exportedAt time.Time) DeliverySnapshot {
	return DeliverySnapshot{
		Date:            d.Date,
		OrderID:         d.OrderID,
		FullName:        d.FullName,
		Phone:           d.Phone,
		Email:           d.Email,
		DeliveryAddress: d.DeliveryAddress,
		City:            d.City,
		PostalCode:      d.PostalCode,
		ProductName:     d.ProductName,
		Quantity:        d.QuantityText(),
		PaymentMethod:   d.PaymentMethod,
		TransactionID:   d.TransactionID,
		TrackingNumber:  d.TrackingNumber,
		DeliveryStatus:  d.DeliveryStatus,
		Amount:          d.AmountText(),
		Position:        position,
		ExportedAt:      exportedAt,
	}
}
