// Gói csvsink ghi bản ghi ra file CSV.
// File được truncate và ghi lại từ đầu mỗi lần chạy, header ghi đúng một lần.
// Mỗi row được flush ngay sau khi ghi nên dữ liệu đã ghi vẫn còn trên đĩa
// kể cả khi lần chạy bị hủy giữa chừng.

package csvsink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/thep200/github-collector/cfg"
)

type Sink struct {
	Config  *cfg.Config
	header  []string
	once    sync.Once
	initErr error
	file    *os.File
	writer  *csv.Writer
	rows    int
}

func NewSink(config *cfg.Config, header []string) (*Sink, error) {
	return &Sink{
		Config: config,
		header: header,
	}, nil
}

// Open truncate file đầu ra và ghi header.
// Phải được gọi ngay khi bắt đầu lần chạy để file cũ không sống sót
// qua một lần chạy thất bại trước khi có bản ghi đầu tiên.
func (s *Sink) Open() error {
	return s.open()
}

func (s *Sink) open() error {
	s.once.Do(func() {
		path := s.Config.Csv.FilePath

		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				s.initErr = fmt.Errorf("failed to create output directory: %w", err)
				return
			}
		}

		// Truncate mỗi lần chạy, không append
		file, err := os.Create(path)
		if err != nil {
			s.initErr = fmt.Errorf("failed to create output file: %w", err)
			return
		}

		writer := csv.NewWriter(file)
		if err := writer.Write(s.header); err != nil {
			file.Close()
			s.initErr = fmt.Errorf("failed to write header: %w", err)
			return
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			file.Close()
			s.initErr = fmt.Errorf("failed to flush header: %w", err)
			return
		}

		s.file = file
		s.writer = writer
	})
	return s.initErr
}

func (s *Sink) Write(row []string) error {
	if err := s.open(); err != nil {
		return err
	}

	if err := s.writer.Write(row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}

	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return fmt.Errorf("failed to flush row: %w", err)
	}

	s.rows++
	return nil
}

// Rows trả về số row dữ liệu đã ghi, không tính header
func (s *Sink) Rows() int {
	return s.rows
}

func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
