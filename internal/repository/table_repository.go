package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Table 整表内容（表头 + 数据行）
type Table struct {
	Header  []string
	Rows    [][]string
	Skipped int // 因列数不符被丢弃的行数
}

// Empty 表格是否连表头都没有
func (t *Table) Empty() bool {
	return t == nil || len(t.Header) == 0
}

// TableRepository 配送表文件访问接口
type TableRepository interface {
	Path() string
	Initialize(header []string) error
	Load() (*Table, error)
	Append(row []string) error
	Rewrite(header []string, rows [][]string) error
}

// CSVTableRepository CSV 文件实现
// 每次调用独立打开并关闭文件，不跨调用持有句柄或锁
type CSVTableRepository struct {
	path string
}

// NewTableRepository 创建配送表仓库
func NewTableRepository(path string) *CSVTableRepository {
	return &CSVTableRepository{path: path}
}

// Path 返回表格文件路径
func (r *CSVTableRepository) Path() string {
	return r.path
}

// Initialize 文件不存在时创建并写入表头；已存在则不检查表头
func (r *CSVTableRepository) Initialize(header []string) error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat table file failed: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create table dir failed: %w", err)
		}
	}

	file, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("create table file failed: %w", err)
	}
	if err := writeRows(file, [][]string{header}); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close table file failed: %w", err)
	}
	return nil
}

// Load 读取整表，文件不存在时返回空表
// 列数与表头不一致的行会被丢弃并计入 Skipped
func (r *CSVTableRepository) Load() (*Table, error) {
	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Table{}, nil
		}
		return nil, fmt.Errorf("open table file failed: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	table := &Table{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read table file failed: %w", err)
		}
		if table.Header == nil {
			table.Header = record
			continue
		}
		if len(record) != len(table.Header) {
			table.Skipped++
			continue
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

// Append 在文件末尾追加一行，不做任何校验
func (r *CSVTableRepository) Append(row []string) error {
	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open table file for append failed: %w", err)
	}
	if err := writeRows(file, [][]string{row}); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close table file failed: %w", err)
	}
	return nil
}

// Rewrite 整表覆盖写入：先写临时文件再原子替换，中途失败不会留下截断的表格
func (r *CSVTableRepository) Rewrite(header []string, rows [][]string) error {
	pending, err := renameio.NewPendingFile(r.path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create temp table file failed: %w", err)
	}
	defer pending.Cleanup()

	all := make([][]string, 0, len(rows)+1)
	all = append(all, header)
	all = append(all, rows...)
	if err := writeRows(pending, all); err != nil {
		return err
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace table file failed: %w", err)
	}
	return nil
}

func writeRows(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write table rows failed: %w", err)
	}
	return nil
}
