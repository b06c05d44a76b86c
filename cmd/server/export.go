package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportKind string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the book catalog or the borrow log as an .xlsx file",
	Example: `  library export --kind books
  library export --kind borrows --out /tmp/borrows.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportKind != "books" && exportKind != "borrows" {
			return fmt.Errorf("--kind must be books or borrows, got %q", exportKind)
		}

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer shutdown(a)

		export := a.Service.Export.ExportBooks
		if exportKind == "borrows" {
			export = a.Service.Export.ExportBorrowLog
		}

		path, err := writeExport(cmd.Context(), export, exportOut)
		if err != nil {
			return err
		}

		a.Logger.Info("导出完成", zap.String("kind", exportKind), zap.String("file", path))
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportKind, "kind", "books", "what to export: books or borrows")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: generated name in the current directory)")
}

// writeExport 生成工作簿并写入文件，out 为空时使用服务生成的文件名
func writeExport(ctx context.Context, export func(context.Context) (*bytes.Buffer, string, error), out string) (string, error) {
	buf, filename, err := export(ctx)
	if err != nil {
		return "", err
	}

	if out == "" {
		out = filename
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("创建目录失败: %w", err)
		}
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("写入文件失败: %w", err)
	}
	return out, nil
}
