package generator

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/OCharnyshevich/ecoenchants/pkg/gamedata"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Config struct {
	SchemeDir string
	OutDir    string
	Package   string
	Version   string
}

type templateData struct {
	Package string
	Version string
	Data    any
}

var funcs = template.FuncMap{
	"stringSlice": stringSlice,
}

func Run(cfg Config) error {
	outPath := filepath.Join(cfg.OutDir, cfg.Package)

	if err := os.RemoveAll(outPath); err != nil {
		return fmt.Errorf("failed to remove output directory: %w", err)
	}

	if err := os.MkdirAll(outPath, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmpl, err := template.New("codegen").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	raw, err := os.ReadFile(filepath.Join(cfg.SchemeDir, "enchantments.json"))
	if err != nil {
		return fmt.Errorf("read enchantments.json: %w", err)
	}

	data, err := loadEnchantments(raw)
	if err != nil {
		return fmt.Errorf("parse enchantments.json: %w", err)
	}

	td := templateData{
		Package: cfg.Package,
		Version: cfg.Version,
		Data:    data,
	}

	outFile := filepath.Join(outPath, "enchantments.go")
	if err := renderToFile(tmpl, "enchantments.go.tmpl", outFile, td); err != nil {
		return fmt.Errorf("generate enchantments.go: %w", err)
	}

	fmt.Printf("  generated enchantments.go (%d enchantments)\n", len(data))

	return nil
}

func renderToFile(tmpl *template.Template, name, outFile string, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", name, err)
	}
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	return nil
}

func loadEnchantments(raw []byte) ([]gamedata.Enchantment, error) {
	list, err := gamedata.ParseEnchantments(raw)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func stringSlice(s []string) string {
	if len(s) == 0 {
		return "nil"
	}
	quoted := make([]string, len(s))
	for i, v := range s {
		quoted[i] = strconv.Quote(v)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}
