package output

import (
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/sjzsdu/scriptmenu/menu"
)

const (
	pdfIndent     = 6.0 // 每级缩进（毫米）
	pdfLineHeight = 6.0
)

// PDFExporter 把菜单导出为 PDF 大纲
type PDFExporter struct {
	Title string
}

// NewPDFExporter 创建 PDF 导出器
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{Title: "Menu"}
}

// Export 实现 Exporter 接口
func (p *PDFExporter) Export(root *menu.Entry, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// 内置字体只支持 cp1252，其余字符被替换
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(p.Title, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(p.Title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if root != nil {
		for _, child := range root.Children() {
			writePDFEntry(pdf, tr, child, 0)
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func writePDFEntry(pdf *gofpdf.Fpdf, tr func(string) string, entry *menu.Entry, level int) {
	left, _, _, _ := pdf.GetMargins()
	pdf.SetX(left + float64(level)*pdfIndent)

	style := ""
	if entry.ChildCount() > 0 {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 11)
	if entry.Enabled() {
		pdf.SetTextColor(0, 0, 0)
	} else {
		pdf.SetTextColor(150, 150, 150)
	}
	pdf.CellFormat(0, pdfLineHeight, tr(entry.Title()), "", 1, "L", false, 0, "")

	for _, child := range entry.Children() {
		writePDFEntry(pdf, tr, child, level+1)
	}
}
