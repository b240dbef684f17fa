package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/parcel-desk/internal/constants"
	"github.com/parcel-desk/internal/logger"
	"github.com/parcel-desk/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Console 配送服务文本菜单
type Console struct {
	deliveries *service.DeliveryService
	in         *bufio.Reader
	out        io.Writer
	log        *zap.SugaredLogger
	sessionID  string
}

// menuItem 菜单项
type menuItem struct {
	choice int
	label  string
	action string
	run    func() error
}

// New 创建控制台
func New(deliveries *service.DeliveryService, in io.Reader, out io.Writer) *Console {
	sessionID := uuid.NewString()
	return &Console{
		deliveries: deliveries,
		in:         bufio.NewReader(in),
		out:        out,
		log:        logger.SW("session_id", sessionID),
		sessionID:  sessionID,
	}
}

// SessionID 当前会话编号（仅用于日志关联）
func (c *Console) SessionID() string {
	return c.sessionID
}

func (c *Console) menu() []menuItem {
	return []menuItem{
		{choice: constants.MenuAddDelivery, label: "Add New Delivery", action: "create", run: c.addDelivery},
		{choice: constants.MenuListDeliveries, label: "Display All Deliveries", action: "list", run: c.listDeliveries},
		{choice: constants.MenuCountDeliveries, label: "Display Total Deliveries", action: "count", run: c.countDeliveries},
		{choice: constants.MenuSearchDelivery, label: "Search Delivery", action: "search", run: c.searchDeliveries},
		{choice: constants.MenuDeleteDelivery, label: "Delete Delivery", action: "delete", run: c.deleteDelivery},
		{choice: constants.MenuUpdateDelivery, label: "Update Delivery", action: "update", run: c.updateDelivery},
		{choice: constants.MenuExit, label: "Exit", action: "exit"},
	}
}

// Run 运行菜单循环，选择退出、输入结束或 ctx 取消时返回
func (c *Console) Run(ctx context.Context) error {
	c.log.Infow("console_session_start", "table", c.deliveries.TablePath())
	defer c.log.Infow("console_session_end")

	items := c.menu()
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		c.printMenu(items)

		line, err := c.readLine("Enter your choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.println("")
				return nil
			}
			return err
		}
		choice, ok := parseChoice(line)
		if !ok {
			c.println("Invalid input. Please enter a number.")
			continue
		}
		if choice == constants.MenuExit {
			c.println("Exiting the Delivery Service. Goodbye!")
			return nil
		}

		item, found := findMenuItem(items, choice)
		if !found {
			c.println("Invalid choice. Please try again.")
			continue
		}
		if err := c.dispatch(item); errors.Is(err, io.EOF) {
			c.println("")
			return nil
		}
	}
}

// dispatch 执行单个菜单项，错误与 panic 都在这里收口，不会终止循环
func (c *Console) dispatch(item menuItem) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Errorw("console_action_panic", "action", item.action, "panic", r)
			c.printf("An error occurred: %v\n", r)
			err = nil
		}
	}()

	err = item.run()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return err
	case errors.Is(err, errCancelled):
		c.log.Debugw("console_action_cancelled", "action", item.action)
		c.println("Operation cancelled.")
		return nil
	}
	c.log.Warnw("console_action_failed", "action", item.action, "kind", service.KindOf(err).String(), "error", err)
	c.println(ErrorMessage(err))
	return nil
}

func (c *Console) printMenu(items []menuItem) {
	c.println("\n--- Delivery Service Menu ---")
	for _, item := range items {
		c.printf("%d. %s\n", item.choice, item.label)
	}
}

func findMenuItem(items []menuItem, choice int) (menuItem, bool) {
	for _, item := range items {
		if item.choice == choice && item.run != nil {
			return item, true
		}
	}
	return menuItem{}, false
}

// parseChoice 只接受纯数字输入
func parseChoice(line string) (int, bool) {
	if line == "" {
		return 0, false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	choice, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	return choice, true
}

func (c *Console) println(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) warnSkipped(skipped int) {
	WarnSkipped(c.out, skipped)
}

// WarnSkipped 读取时有行被丢弃则提示
func WarnSkipped(w io.Writer, skipped int) {
	if skipped > 0 {
		fmt.Fprintln(w, "Warning: Some rows had incorrect lengths and were skipped.")
	}
}

func isCancel(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), constants.CancelKeyword)
}
