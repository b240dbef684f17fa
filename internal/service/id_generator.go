package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/parcel-desk/internal/constants"
)

// IDGenerator 生成订单号、交易号、运单号
// 生成结果不与现有记录比对，重复的概率由随机位数决定
type IDGenerator interface {
	OrderID() string
	TransactionID() string
	TrackingNumber() string
}

// RandomIDGenerator 基于 crypto/rand 的随机编号
type RandomIDGenerator struct{}

// NewRandomIDGenerator 创建随机编号生成器
func NewRandomIDGenerator() *RandomIDGenerator {
	return &RandomIDGenerator{}
}

// OrderID OD + [10000, 99999]
func (g *RandomIDGenerator) OrderID() string {
	return fmt.Sprintf("%s%d", constants.OrderIDPrefix, randBetween(constants.OrderIDMin, constants.OrderIDMax))
}

// TransactionID TX + [10000, 99999]
func (g *RandomIDGenerator) TransactionID() string {
	return fmt.Sprintf("%s%d", constants.TransactionIDPrefix, randBetween(constants.TransactionIDMin, constants.TransactionIDMax))
}

// TrackingNumber TN + [100000, 999999]
func (g *RandomIDGenerator) TrackingNumber() string {
	return fmt.Sprintf("%s%d", constants.TrackingNumberPrefix, randBetween(constants.TrackingNumberMin, constants.TrackingNumberMax))
}

// randBetween 闭区间随机数，随机源失败时退化为下界
func randBetween(min, max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return min
	}
	return min + n.Int64()
}
