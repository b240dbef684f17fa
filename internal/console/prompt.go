package console

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

var errCancelled = errors.New("operation cancelled")

// readLine 打印提示并读取一行（去掉首尾空白）
// 输入结束且没有剩余内容时返回 io.EOF
func (c *Console) readLine(prompt string) (string, error) {
	if prompt != "" {
		c.printf("%s", prompt)
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readField 读取一个字段，输入 cancel 时放弃当前操作
// 只用于流程的第一个提示和需要校验重试的提示，自由文本用 readLine
func (c *Console) readField(prompt string) (string, error) {
	value, err := c.readLine(prompt)
	if err != nil {
		return "", err
	}
	if isCancel(value) {
		return "", errCancelled
	}
	return value, nil
}

// promptValid 反复读取直到 valid 通过
func (c *Console) promptValid(prompt string, valid func(string) bool, message string) (string, error) {
	for {
		value, err := c.readField(prompt)
		if err != nil {
			return "", err
		}
		if valid(value) {
			return value, nil
		}
		c.println(message)
	}
}

// promptOptional 读取可留空的字段，非空时必须通过 valid
func (c *Console) promptOptional(prompt string, valid func(string) bool, message string) (string, error) {
	for {
		value, err := c.readField(prompt)
		if err != nil {
			return "", err
		}
		if value == "" || valid(value) {
			return value, nil
		}
		c.println(message)
	}
}

// promptPositiveInt 反复读取直到得到正整数
func (c *Console) promptPositiveInt(prompt string, allowEmpty bool) (string, error) {
	for {
		value, err := c.readField(prompt)
		if err != nil {
			return "", err
		}
		if value == "" && allowEmpty {
			return "", nil
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			c.println(msgInvalidPositiveInt)
			continue
		}
		if n <= 0 {
			c.println(msgNotPositive)
			continue
		}
		return value, nil
	}
}
