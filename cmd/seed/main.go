package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/parcel-desk/internal/config"
	"github.com/parcel-desk/internal/logger"
	"github.com/parcel-desk/internal/provider"
	"github.com/parcel-desk/internal/service"
)

func main() {
	var configFile, tableFile string
	var count int
	flag.StringVar(&configFile, "config", "", "配置文件路径")
	flag.StringVar(&tableFile, "file", "", "配送表路径，覆盖 storage.file")
	flag.IntVar(&count, "n", 12, "生成的配送记录条数")
	flag.Parse()

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	if tableFile != "" {
		cfg.Storage.File = tableFile
	}
	logger.Init(cfg.App.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	container := provider.NewContainer(cfg)
	defer container.Close()

	svc := container.DeliveryService
	if err := svc.Initialize(); err != nil {
		stdLog.Fatalf("Failed to initialize table %s: %v", svc.TablePath(), err)
	}

	created, err := seedDeliveries(svc, count, rand.New(rand.NewSource(int64(count))))
	if err != nil {
		stdLog.Printf("Seed stopped after %d deliveries: %v", created, err)
		os.Exit(1)
	}
	fmt.Printf("Created %d sample deliveries in %s\n", created, svc.TablePath())
}

// sampleCustomer 示例收件人
type sampleCustomer struct {
	name    string
	phone   string
	email   string
	address string
	city    string
	postal  string
}

var sampleCustomers = []sampleCustomer{
	{name: "Somchai Jaidee", phone: "0812345678", email: "somchai.j@example.co.th", address: "99/1 Sukhumvit Rd", city: "Bangkok", postal: "10110"},
	{name: "Malee Srisuk", phone: "0898765432", email: "malee.s@example.co.th", address: "12 Nimmanhaemin Rd", city: "Chiang Mai", postal: "50200"},
	{name: "Anan Wongsa", phone: "0623456789", email: "anan.w@example.com", address: "45 Thepkrasattri Rd", city: "Phuket", postal: "83000"},
	{name: "Pim Chaiyaporn", phone: "0954321876", email: "pim.c@example.com", address: "8 Mittraphap Rd", city: "Khon Kaen", postal: "40000"},
	{name: "Niran Boonmee", phone: "0867654321", email: "niran.b@example.net", address: "230 Beach Rd", city: "Pattaya", postal: "20150"},
}

var sampleProducts = []string{"Rice Cooker", "Electric Fan", "Water Filter", "Desk Lamp", "Bluetooth Speaker"}

var samplePaymentMethods = []string{"Credit Card", "Cash", "PromptPay", "Bank Transfer"}

// seedDeliveries 通过服务逐条创建示例配送记录
func seedDeliveries(svc *service.DeliveryService, count int, rng *rand.Rand) (int, error) {
	for i := 0; i < count; i++ {
		customer := sampleCustomers[i%len(sampleCustomers)]
		_, err := svc.Create(service.CreateDeliveryInput{
			FullName:        customer.name,
			Phone:           customer.phone,
			Email:           customer.email,
			DeliveryAddress: customer.address,
			City:            customer.city,
			PostalCode:      customer.postal,
			ProductName:     sampleProducts[rng.Intn(len(sampleProducts))],
			Quantity:        fmt.Sprintf("%d", rng.Intn(5)+1),
			PaymentMethod:   samplePaymentMethods[rng.Intn(len(samplePaymentMethods))],
		})
		if err != nil {
			return i, err
		}
	}
	return count, nil
}
