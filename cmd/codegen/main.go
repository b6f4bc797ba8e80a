package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/OCharnyshevich/ecoenchants/cmd/codegen/internal/generator"
)

func main() {
	schemeDir := flag.String("scheme", "", "path to a downloaded scheme directory (e.g. ./scheme/pc-1.19.4)")
	outDir := flag.String("out", "./pkg/gamedata/versions", "output base directory for generated packages")
	pkg := flag.String("pkg", "", "package name override (default: derived from scheme dir name)")
	version := flag.String("version", "", "version name registered with gamedata (default: scheme dir name)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *schemeDir == "" {
		log.Error("-scheme flag is required")
		flag.Usage()
		os.Exit(1)
	}

	dirName := filepath.Base(*schemeDir)
	if *version == "" {
		*version = dirName
	}
	if *pkg == "" {
		*pkg = sanitizePackageName(dirName)
	}

	log.Info("generating host data", "package", *pkg, "version", *version, "scheme", *schemeDir)

	cfg := generator.Config{
		SchemeDir: *schemeDir,
		OutDir:    *outDir,
		Package:   *pkg,
		Version:   *version,
	}
	if err := generator.Run(cfg); err != nil {
		log.Error("codegen failed", "error", err)
		os.Exit(1)
	}

	log.Info("codegen done", "out", filepath.Join(*outDir, *pkg))
}

func sanitizePackageName(name string) string {
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, ".", "_")
	return strings.ToLower(name)
}
