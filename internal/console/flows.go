package console

import (
	"errors"
	"strings"

	"github.com/parcel-desk/internal/constants"
	"github.com/parcel-desk/internal/models"
	"github.com/parcel-desk/internal/service"
)

// addDelivery 逐项录入并新建配送记录，完成后打印收据
func (c *Console) addDelivery() error {
	var input service.CreateDeliveryInput
	var err error

	if input.FullName, err = c.readField("Enter Full Name: "); err != nil {
		return err
	}
	if input.Phone, err = c.promptValid("Enter Phone Number: ", service.IsValidPhone, msgInvalidPhone); err != nil {
		return err
	}
	if input.Email, err = c.promptValid("Enter Email: ", service.IsValidEmail, msgInvalidEmail); err != nil {
		return err
	}
	if input.DeliveryAddress, err = c.readLine("Enter Delivery Address: "); err != nil {
		return err
	}
	if input.City, err = c.readLine("Enter City: "); err != nil {
		return err
	}
	if input.PostalCode, err = c.readLine("Enter Postal Code: "); err != nil {
		return err
	}
	if input.ProductName, err = c.readLine("Enter Product Name: "); err != nil {
		return err
	}
	if input.Quantity, err = c.promptPositiveInt("Enter Quantity: ", false); err != nil {
		return err
	}
	if input.PaymentMethod, err = c.readLine("Enter Payment Method (e.g., Credit Card, Cash): "); err != nil {
		return err
	}

	delivery, err := c.deliveries.Create(input)
	if err != nil {
		return err
	}
	c.log.Infow("console_delivery_created", "order_id", delivery.OrderID)
	return c.showReceipt(delivery.OrderID, true)
}

// showReceipt 打印收据，找不到订单时不输出任何内容
// warn 为 false 时调用方已经提示过被跳过的行
func (c *Console) showReceipt(orderID string, warn bool) error {
	receipt, err := c.deliveries.Receipt(orderID)
	if warn && receipt != nil {
		c.warnSkipped(receipt.Skipped)
	}
	if err != nil {
		if errors.Is(err, service.ErrDeliveryNotFound) {
			return nil
		}
		return err
	}
	c.println("\n--- Receipt ---")
	RenderReceipt(c.out, receipt.Lines)
	return nil
}

// listDeliveries 选择排序方式后分页显示全部记录
func (c *Console) listDeliveries() error {
	result, err := c.deliveries.Load()
	if err != nil {
		return err
	}
	c.warnSkipped(result.Skipped)
	if len(result.Deliveries) == 0 {
		c.println("No data available.")
		return nil
	}

	c.println("Sort by: 1-Date, 2-Name, 3-Status")
	choice, err := c.readLine("Enter choice: ")
	if err != nil {
		return err
	}
	service.SortDeliveries(result.Deliveries, constants.SortChoices[choice])

	header := displayHeader(result.Header)
	for page := 1; ; page++ {
		current := c.deliveries.Page(result.Deliveries, page)
		c.printf("\n--- All Delivery Records (Page %d/%d) ---\n", current.Page, current.TotalPages)
		RenderTable(c.out, header, deliveryRows(current.Items))
		if current.Page >= current.TotalPages {
			return nil
		}

		next, err := c.readLine("Press Enter for next page, or type 'exit' to stop: ")
		if err != nil {
			return err
		}
		if next = strings.ToLower(next); next == "exit" || next == constants.CancelKeyword {
			return nil
		}
	}
}

// countDeliveries 显示记录总数
func (c *Console) countDeliveries() error {
	result, err := c.deliveries.Tally()
	if err != nil {
		return err
	}
	c.warnSkipped(result.Skipped)
	c.printf("\nTotal Deliveries: %d\n", result.Total)
	return nil
}

// searchDeliveries 按任意字段模糊搜索
// 仅表头命中时视为没有结果；搜索词按原样使用，cancel 也是合法的搜索词
func (c *Console) searchDeliveries() error {
	term, err := c.readLine("Enter Full Name or Order ID to search: ")
	if err != nil {
		return err
	}
	result, err := c.deliveries.Search(term)
	if err != nil {
		return err
	}
	c.warnSkipped(result.Skipped)
	if len(result.Matches) == 0 {
		c.println("No matching records found.")
		return nil
	}
	c.println("\n--- Search Results ---")
	RenderTable(c.out, constants.TableHeader, deliveryRows(result.Matches))
	return nil
}

// deleteDelivery 删除订单号匹配的全部记录
func (c *Console) deleteDelivery() error {
	orderID, err := c.readField("Enter Order ID to delete: ")
	if err != nil {
		return err
	}
	result, err := c.deliveries.Delete(orderID)
	if result != nil {
		c.warnSkipped(result.Skipped)
	}
	if err != nil {
		return err
	}
	c.printf("Record with Order ID %s deleted successfully.\n", orderID)
	return nil
}

// updateDelivery 显示当前记录并逐项修改，留空保留原值
func (c *Console) updateDelivery() error {
	orderID, err := c.readField("Enter Order ID to update: ")
	if err != nil {
		return err
	}
	lookup, err := c.deliveries.Lookup(orderID)
	if lookup != nil {
		c.warnSkipped(lookup.Skipped)
	}
	if err != nil {
		return err
	}
	current := lookup.Delivery

	c.println("\n--- Current Record ---")
	c.println(strings.Join(current.ToRow(), ", "))
	c.println("\n--- Enter Updated Information ---")

	input, err := c.readUpdateInput(current)
	if err != nil {
		return err
	}
	if _, err := c.deliveries.Update(orderID, input); err != nil {
		return err
	}
	if err := c.showReceipt(orderID, false); err != nil {
		return err
	}
	c.println("Record updated successfully.")
	return nil
}

func (c *Console) readUpdateInput(current *models.Delivery) (service.UpdateDeliveryInput, error) {
	var input service.UpdateDeliveryInput
	var err error

	if input.FullName, err = c.readLine(fieldPrompt("Full Name", current.FullName)); err != nil {
		return input, err
	}
	if input.Phone, err = c.promptOptional(fieldPrompt("Phone", current.Phone), service.IsValidPhone, msgInvalidPhone); err != nil {
		return input, err
	}
	if input.Email, err = c.promptOptional(fieldPrompt("Email", current.Email), service.IsValidEmail, msgInvalidEmail); err != nil {
		return input, err
	}
	if input.DeliveryAddress, err = c.readLine(fieldPrompt("Delivery Address", current.DeliveryAddress)); err != nil {
		return input, err
	}
	if input.City, err = c.readLine(fieldPrompt("City", current.City)); err != nil {
		return input, err
	}
	if input.PostalCode, err = c.readLine(fieldPrompt("Postal Code", current.PostalCode)); err != nil {
		return input, err
	}
	if input.ProductName, err = c.readLine(fieldPrompt("Product Name", current.ProductName)); err != nil {
		return input, err
	}
	if input.Quantity, err = c.promptPositiveInt(fieldPrompt("Quantity", current.QuantityText()), true); err != nil {
		return input, err
	}
	if input.PaymentMethod, err = c.readLine(fieldPrompt("Payment Method", current.PaymentMethod)); err != nil {
		return input, err
	}
	c.printf("Known statuses: %s\n", strings.Join(constants.KnownDeliveryStatuses, ", "))
	if input.DeliveryStatus, err = c.readLine(fieldPrompt("Delivery Status", current.DeliveryStatus)); err != nil {
		return input, err
	}
	return input, nil
}

func fieldPrompt(label, current string) string {
	return label + " (" + current + "): "
}

// displayHeader 文件表头列数正确时沿用文件表头
func displayHeader(header []string) []string {
	if len(header) == models.DeliveryFieldCount {
		return header
	}
	return constants.TableHeader
}

func deliveryRows(deliveries []models.Delivery) [][]string {
	rows := make([][]string, 0, len(deliveries))
	for _, delivery := range deliveries {
		rows = append(rows, delivery.ToRow())
	}
	return rows
}
