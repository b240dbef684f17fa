package service

import (
	"sort"
	"strings"
	"time"

	"github.com/parcel-desk/internal/constants"
	"github.com/parcel-desk/internal/logger"
	"github.com/parcel-desk/internal/models"
	"github.com/parcel-desk/internal/repository"
)

// DeliveryService 配送记录服务
// 每个操作都整表读取；写操作整表回写（追加除外）
type DeliveryService struct {
	tableRepo repository.TableRepository
	ids       IDGenerator
	unitPrice int64
	pageSize  int
	now       func() time.Time
}

// NewDeliveryService 创建配送记录服务
func NewDeliveryService(tableRepo repository.TableRepository, ids IDGenerator, unitPrice int64, pageSize int) *DeliveryService {
	if ids == nil {
		ids = NewRandomIDGenerator()
	}
	if unitPrice <= 0 {
		unitPrice = constants.DefaultUnitPrice
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	return &DeliveryService{
		tableRepo: tableRepo,
		ids:       ids,
		unitPrice: unitPrice,
		pageSize:  pageSize,
		now:       time.Now,
	}
}

// CreateDeliveryInput 新建配送输入
type CreateDeliveryInput struct {
	FullName        string
	Phone           string
	Email           string
	DeliveryAddress string
	City            string
	PostalCode      string
	ProductName     string
	Quantity        string
	PaymentMethod   string
}

// UpdateDeliveryInput 更新配送输入，空值表示保留原值
type UpdateDeliveryInput struct {
	FullName        string
	Phone           string
	Email           string
	DeliveryAddress string
	City            string
	PostalCode      string
	ProductName     string
	Quantity        string
	PaymentMethod   string
	DeliveryStatus  string
}

// LoadResult 读取结果
type LoadResult struct {
	Header     []string
	Deliveries []models.Delivery
	Skipped    int // 列数不符或无法解析而被跳过的行数
}

// SearchResult 搜索结果
type SearchResult struct {
	Matches       []models.Delivery
	HeaderMatched bool // 表头也命中了搜索词
	Skipped       int
}

// CountResult 计数结果
type CountResult struct {
	Total   int
	Skipped int
}

// ChangeResult 删除或更新结果，未命中时也会返回以便提示被跳过的行
type ChangeResult struct {
	Affected int
	Skipped  int
}

// LookupResult 按订单号查找的结果
type LookupResult struct {
	Delivery *models.Delivery
	Skipped  int
}

// ReceiptResult 收据结果
type ReceiptResult struct {
	Lines   []models.ReceiptLine
	Skipped int
}

// PageResult 分页结果
type PageResult struct {
	Items      []models.Delivery
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// PageSize 每页条数
func (s *DeliveryService) PageSize() int {
	return s.pageSize
}

// TablePath 配送表文件路径
func (s *DeliveryService) TablePath() string {
	return s.tableRepo.Path()
}

// Initialize 确保配送表存在且带表头
// 失败只记录日志并返回错误，调用方可继续运行（后续读取视为空表）
func (s *DeliveryService) Initialize() error {
	if err := s.tableRepo.Initialize(constants.TableHeader); err != nil {
		logger.Errorw("table_initialize_failed", "path", s.tableRepo.Path(), "error", err)
		return wrapTableIO("initialize", err)
	}
	return nil
}

// Load 读取全部配送记录，保持存储顺序
func (s *DeliveryService) Load() (*LoadResult, error) {
	table, err := s.tableRepo.Load()
	if err != nil {
		logger.Errorw("table_load_failed", "path", s.tableRepo.Path(), "error", err)
		return nil, wrapTableIO("load", err)
	}
	result := &LoadResult{
		Header:     table.Header,
		Deliveries: make([]models.Delivery, 0, len(table.Rows)),
		Skipped:    table.Skipped,
	}
	for _, row := range table.Rows {
		delivery, err := models.DeliveryFromRow(row)
		if err != nil {
			result.Skipped++
			continue
		}
		result.Deliveries = append(result.Deliveries, delivery)
	}
	if result.Skipped > 0 {
		logger.Warnw("table_rows_skipped",
			"path", s.tableRepo.Path(),
			"skipped", result.Skipped,
			"reason", ErrMalformedRow.Error(),
		)
	}
	return result, nil
}

// Create 校验并追加一条新配送记录，返回新记录（含订单号）
func (s *DeliveryService) Create(input CreateDeliveryInput) (*models.Delivery, error) {
	phone := strings.TrimSpace(input.Phone)
	if err := ValidatePhone(phone); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(input.Email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	quantity, err := ParseQuantity(input.Quantity)
	if err != nil {
		return nil, err
	}

	delivery := models.Delivery{
		Date:            s.now().Format(constants.DateLayout),
		OrderID:         s.ids.OrderID(),
		FullName:        strings.TrimSpace(input.FullName),
		Phone:           phone,
		Email:           email,
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
		City:            strings.TrimSpace(input.City),
		PostalCode:      strings.TrimSpace(input.PostalCode),
		ProductName:     strings.TrimSpace(input.ProductName),
		PaymentMethod:   strings.TrimSpace(input.PaymentMethod),
		TransactionID:   s.ids.TransactionID(),
		TrackingNumber:  s.ids.TrackingNumber(),
		DeliveryStatus:  constants.DeliveryStatusPending,
		Amount:          models.NewMoneyFromInt(s.unitPrice * int64(quantity)),
	}
	delivery.SetQuantity(quantity)

	if err := s.tableRepo.Initialize(constants.TableHeader); err != nil {
		return nil, wrapTableIO("initialize", err)
	}
	if err := s.tableRepo.Append(delivery.ToRow()); err != nil {
		logger.Errorw("delivery_append_failed", "order_id", delivery.OrderID, "error", err)
		return nil, wrapTableIO("append", err)
	}
	logger.Infow("delivery_created",
		"order_id", delivery.OrderID,
		"tracking_number", delivery.TrackingNumber,
		"quantity", quantity,
		"amount", delivery.Amount.String(),
	)
	return &delivery, nil
}

// Lookup 查找第一条订单号匹配的记录，未命中时返回的结果只带跳过行数
func (s *DeliveryService) Lookup(orderID string) (*LookupResult, error) {
	result, err := s.Load()
	if err != nil {
		return nil, err
	}
	lookup := &LookupResult{Skipped: result.Skipped}
	orderID = strings.TrimSpace(orderID)
	for i := range result.Deliveries {
		if result.Deliveries[i].OrderID == orderID {
			delivery := result.Deliveries[i]
			lookup.Delivery = &delivery
			return lookup, nil
		}
	}
	return lookup, ErrDeliveryNotFound
}

// FindByOrderID 返回第一条订单号匹配的记录
func (s *DeliveryService) FindByOrderID(orderID string) (*models.Delivery, error) {
	lookup, err := s.Lookup(orderID)
	if err != nil {
		return nil, err
	}
	return lookup.Delivery, nil
}

// Receipt 返回订单的收据字段
func (s *DeliveryService) Receipt(orderID string) (*ReceiptResult, error) {
	lookup, err := s.Lookup(orderID)
	if lookup == nil {
		return nil, err
	}
	receipt := &ReceiptResult{Skipped: lookup.Skipped}
	if err != nil {
		return receipt, err
	}
	receipt.Lines = lookup.Delivery.ReceiptLines()
	return receipt, nil
}

// List 读取全部记录并按 sortKey 稳定排序；未知排序键保持存储顺序
func (s *DeliveryService) List(sortKey string) (*LoadResult, error) {
	result, err := s.Load()
	if err != nil {
		return nil, err
	}
	SortDeliveries(result.Deliveries, sortKey)
	return result, nil
}

// SortDeliveries 稳定排序：日期按字符串，姓名与状态忽略大小写
func SortDeliveries(deliveries []models.Delivery, sortKey string) {
	var key func(models.Delivery) string
	switch strings.ToLower(strings.TrimSpace(sortKey)) {
	case constants.SortByDate:
		key = func(d models.Delivery) string { return d.Date }
	case constants.SortByName:
		key = func(d models.Delivery) string { return strings.ToLower(d.FullName) }
	case constants.SortByStatus:
		key = func(d models.Delivery) string { return strings.ToLower(d.DeliveryStatus) }
	default:
		return
	}
	sort.SliceStable(deliveries, func(i, j int) bool {
		return key(deliveries[i]) < key(deliveries[j])
	})
}

// Page 取第 page 页（从 1 开始），页码越界时夹到合法范围
func (s *DeliveryService) Page(deliveries []models.Delivery, page int) PageResult {
	return Paginate(deliveries, page, s.pageSize)
}

// Paginate 对记录分页，没有数据时也有 1 页
func Paginate(deliveries []models.Delivery, page, pageSize int) PageResult {
	page, pageSize = repository.NormalizePagination(page, pageSize, constants.DefaultPageSize)
	total := len(deliveries)
	totalPages := repository.TotalPages(total, pageSize)
	if page > totalPages {
		page = totalPages
	}
	start, end := repository.PageBounds(total, page, pageSize)
	return PageResult{
		Items:      deliveries[start:end],
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Count 数据行数（不含表头），文件不存在或为空时为 0
func (s *DeliveryService) Count() (int, error) {
	result, err := s.Tally()
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

// Tally 统计与表头列数一致的数据行
// 表头不是配送表布局时这些行无法解析，但仍计入总数
func (s *DeliveryService) Tally() (*CountResult, error) {
	table, err := s.tableRepo.Load()
	if err != nil {
		logger.Errorw("table_load_failed", "path", s.tableRepo.Path(), "error", err)
		return nil, wrapTableIO("load", err)
	}
	result := &CountResult{Total: len(table.Rows), Skipped: table.Skipped}
	if len(table.Header) != models.DeliveryFieldCount {
		result.Skipped += len(table.Rows)
	}
	if result.Skipped > 0 {
		logger.Warnw("table_rows_skipped", "path", s.tableRepo.Path(), "skipped", result.Skipped)
	}
	return result, nil
}

// Search 对每行每个字段做忽略大小写的子串匹配，保持存储顺序
func (s *DeliveryService) Search(term string) (*SearchResult, error) {
	result, err := s.Load()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	search := &SearchResult{
		HeaderMatched: rowContains(result.Header, needle),
		Skipped:       result.Skipped,
	}
	for _, delivery := range result.Deliveries {
		if rowContains(delivery.ToRow(), needle) {
			search.Matches = append(search.Matches, delivery)
		}
	}
	return search, nil
}

func rowContains(row []string, needle string) bool {
	for _, cell := range row {
		if strings.Contains(strings.ToLower(cell), needle) {
			return true
		}
	}
	return false
}

// Delete 删除所有订单号匹配的记录并整表回写，返回删除条数
// 没有匹配时不写文件并返回 ErrDeliveryNotFound
func (s *DeliveryService) Delete(orderID string) (*ChangeResult, error) {
	result, err := s.loadForRewrite()
	if result == nil {
		return nil, err
	}
	change := &ChangeResult{Skipped: result.Skipped}
	if err != nil {
		return change, err
	}
	orderID = strings.TrimSpace(orderID)
	kept := make([][]string, 0, len(result.Deliveries))
	removed := 0
	for _, delivery := range result.Deliveries {
		if delivery.OrderID == orderID {
			removed++
			continue
		}
		kept = append(kept, delivery.ToRow())
	}
	if removed == 0 {
		return change, ErrDeliveryNotFound
	}
	if err := s.rewrite(result.Header, kept); err != nil {
		return change, err
	}
	change.Affected = removed
	logger.Infow("delivery_deleted", "order_id", orderID, "removed", removed, "dropped", result.Skipped)
	return change, nil
}

// Update 更新所有订单号匹配的记录的可编辑字段并整表回写，返回更新条数
// 日期、订单号、交易号、运单号、金额保持不变
func (s *DeliveryService) Update(orderID string, input UpdateDeliveryInput) (*ChangeResult, error) {
	patch, err := normalizeUpdateInput(input)
	if err != nil {
		return nil, err
	}
	result, err := s.loadForRewrite()
	if result == nil {
		return nil, err
	}
	change := &ChangeResult{Skipped: result.Skipped}
	if err != nil {
		return change, err
	}
	orderID = strings.TrimSpace(orderID)
	rows := make([][]string, 0, len(result.Deliveries))
	updated := 0
	for _, delivery := range result.Deliveries {
		if delivery.OrderID == orderID {
			patch.apply(&delivery)
			updated++
		}
		rows = append(rows, delivery.ToRow())
	}
	if updated == 0 {
		return change, ErrDeliveryNotFound
	}
	if err := s.rewrite(result.Header, rows); err != nil {
		return change, err
	}
	change.Affected = updated
	logger.Infow("delivery_updated", "order_id", orderID, "updated", updated, "dropped", result.Skipped)
	return change, nil
}

// loadForRewrite 读取待回写的表
// 表头不是配送表布局时拒绝回写，否则这些行会被整表覆盖掉
func (s *DeliveryService) loadForRewrite() (*LoadResult, error) {
	result, err := s.Load()
	if err != nil {
		return nil, err
	}
	if len(result.Header) != 0 && len(result.Header) != models.DeliveryFieldCount {
		logger.Warnw("table_rewrite_refused", "path", s.tableRepo.Path(), "header_columns", len(result.Header))
		return result, ErrHeaderMismatch
	}
	return result, nil
}

func (s *DeliveryService) rewrite(header []string, rows [][]string) error {
	if len(header) == 0 {
		header = constants.TableHeader
	}
	if err := s.tableRepo.Rewrite(header, rows); err != nil {
		logger.Errorw("table_rewrite_failed", "path", s.tableRepo.Path(), "error", err)
		return wrapTableIO("rewrite", err)
	}
	return nil
}

// deliveryPatch 归一化后的更新内容
type deliveryPatch struct {
	input    UpdateDeliveryInput
	quantity int
}

func normalizeUpdateInput(input UpdateDeliveryInput) (deliveryPatch, error) {
	normalized := UpdateDeliveryInput{
		FullName:        strings.TrimSpace(input.FullName),
		Phone:           strings.TrimSpace(input.Phone),
		Email:           strings.TrimSpace(input.Email),
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
		City:            strings.TrimSpace(input.City),
		PostalCode:      strings.TrimSpace(input.PostalCode),
		ProductName:     strings.TrimSpace(input.ProductName),
		Quantity:        strings.TrimSpace(input.Quantity),
		PaymentMethod:   strings.TrimSpace(input.PaymentMethod),
		DeliveryStatus:  strings.TrimSpace(input.DeliveryStatus),
	}
	patch := deliveryPatch{input: normalized}
	if normalized.Phone != "" {
		if err := ValidatePhone(normalized.Phone); err != nil {
			return patch, err
		}
	}
	if normalized.Email != "" {
		if err := ValidateEmail(normalized.Email); err != nil {
			return patch, err
		}
	}
	if normalized.Quantity != "" {
		quantity, err := ParseQuantity(normalized.Quantity)
		if err != nil {
			return patch, err
		}
		patch.quantity = quantity
	}
	return patch, nil
}

func (p deliveryPatch) apply(delivery *models.Delivery) {
	keepOrReplace(&delivery.FullName, p.input.FullName)
	keepOrReplace(&delivery.Phone, p.input.Phone)
	keepOrReplace(&delivery.Email, p.input.Email)
	keepOrReplace(&delivery.DeliveryAddress, p.input.DeliveryAddress)
	keepOrReplace(&delivery.City, p.input.City)
	keepOrReplace(&delivery.PostalCode, p.input.PostalCode)
	keepOrReplace(&delivery.ProductName, p.input.ProductName)
	keepOrReplace(&delivery.PaymentMethod, p.input.PaymentMethod)
	keepOrReplace(&delivery.DeliveryStatus, p.input.DeliveryStatus)
	if p.quantity > 0 {
		delivery.SetQuantity(p.quantity)
	}
}

func keepOrReplace(field *string, value string) {
	if value != "" {
		*field = value
	}
}
