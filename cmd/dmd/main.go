package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	get "github.com/hashicorp/go-getter"
)

func main() {
	var (
		base     = flag.String("base", "https://github.com/PrismarineJS/minecraft-data.git", "base url")
		platform = flag.String("platform", "pc", "platform of schemas")
		ver      = flag.String("version", "1.19.4", "version of schemas")
		out      = flag.String("o", "./scheme", "output dir path")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := validate(*out, *platform, *ver); err != nil {
		log.Error("invalid flags", "error", err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := schemePath(*out, *platform, *ver)
	url := schemeURL(*base, *platform, *ver)

	log.Info("downloading scheme", "url", url, "path", path)
	if err := download(ctx, path, url); err != nil {
		log.Error("download scheme", "error", err)
		os.Exit(1)
	}

	if _, err := os.Stat(filepath.Join(path, "enchantments.json")); err != nil {
		log.Warn("scheme has no enchantments.json", "path", path)
	}
	log.Info("scheme downloaded", "path", path)
}

func validate(out, platform, ver string) error {
	switch {
	case out == "":
		return fmt.Errorf("output dir path required")
	case platform == "":
		return fmt.Errorf("platform required")
	case ver == "":
		return fmt.Errorf("version required")
	}
	return nil
}

// schemePath matches the directory names codegen turns into package names.
func schemePath(out, platform, ver string) string {
	return filepath.Join(out, fmt.Sprintf("%s-%s", platform, ver))
}

// schemeURL points at data/<platform>/<version> inside the minecraft-data repo.
func schemeURL(base, platform, ver string) string {
	return fmt.Sprintf("git::%s//data/%s/%s", base, platform, ver)
}

func download(ctx context.Context, dst, url string) error {
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("clear %s: %w", dst, err)
	}
	if err := get.Get(dst, url, get.WithContext(ctx)); err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	return nil
}
