package constants

// 配送状态常量（自由文本，仅作为提示，不做校验）
const (
	DeliveryStatusPending   = "Pending"
	DeliveryStatusShipped   = "Shipped"
	DeliveryStatusInTransit = "In Transit"
	DeliveryStatusDelivered = "Delivered"
	DeliveryStatusCancelled = "Cancelled"
)

// KnownDeliveryStatuses 控制台提示用的常见状态
var KnownDeliveryStatuses = []string{
	DeliveryStatusPending,
	DeliveryStatusShipped,
	DeliveryStatusInTransit,
	DeliveryStatusDelivered,
	DeliveryStatusCancelled,
}

// 表头列名常量（顺序即落盘顺序）
const (
	ColumnDate            = "Date"
	ColumnOrderID         = "Order ID"
	ColumnFullName        = "Full Name"
	ColumnPhone           = "Phone"
	ColumnEmail           = "Email"
	ColumnDeliveryAddress = "Delivery Address"
	ColumnCity            = "City"
	ColumnPostalCode      = "Postal Code"
	ColumnProductName     = "Product Name"
	ColumnQuantity        = "Quantity"
	ColumnPaymentMethod   = "Payment Method"
	ColumnTransactionID   = "Transaction ID"
	ColumnTrackingNumber  = "Tracking Number"
	ColumnDeliveryStatus  = "Delivery Status"
	ColumnAmount          = "Amount"
)

// TableHeader 配送表固定表头
var TableHeader = []string{
	ColumnDate,
	ColumnOrderID,
	ColumnFullName,
	ColumnPhone,
	ColumnEmail,
	ColumnDeliveryAddress,
	ColumnCity,
	ColumnPostalCode,
	ColumnProductName,
	ColumnQuantity,
	ColumnPaymentMethod,
	ColumnTransactionID,
	ColumnTrackingNumber,
	ColumnDeliveryStatus,
	ColumnAmount,
}

// 列表排序键常量
const (
	SortByNone   = ""
	SortByDate   = "date"
	SortByName   = "name"
	SortByStatus = "status"
)

// 编号前缀与随机位范围
const (
	OrderIDPrefix        = "OD"
	OrderIDMin           = 10000
	OrderIDMax           = 99999
	TransactionIDPrefix  = "TX"
	TransactionIDMin     = 10000
	TransactionIDMax     = 99999
	TrackingNumberPrefix = "TN"
	TrackingNumberMin    = 100000
	TrackingNumberMax    = 999999
)

// 计价与分页默认值
const (
	DefaultUnitPrice = 50
	DefaultPageSize  = 10
	DateLayout       = "2006-01-02"
)

// 快照导出驱动常量
const (
	SnapshotDriverSQLite   = "sqlite"
	SnapshotDriverPostgres = "postgres"
)

// 主菜单选项
const (
	MenuAddDelivery     = 1
	MenuListDeliveries  = 2
	MenuCountDeliveries = 3
	MenuSearchDelivery  = 4
	MenuDeleteDelivery  = 5
	MenuUpdateDelivery  = 6
	MenuExit            = 7
)

// SortChoices 列表排序菜单（1-日期 2-姓名 3-状态）
var SortChoices = map[string]string{
	"1": SortByDate,
	"2": SortByName,
	"3": SortByStatus,
}

// CancelKeyword 在任意输入提示处放弃当前操作
const CancelKeyword = "cancel"
