package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const configFileName = ".textdrawrc"

type Config struct {
	SaveDirectory string
	ToolLock      bool
	DefaultBorder BorderStyle
	ConfirmQuit   bool
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		ToolLock:      false,
		DefaultBorder: BorderSingle,
		ConfirmQuit:   true,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}

	configPath := filepath.Join(homeDir, configFileName)
	file, err := os.Open(configPath)
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()

	return parseConfig(file, homeDir)
}

// parseConfig reads key = value lines. Unknown keys and bad values are
// skipped so a stale rc file never blocks startup.
func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "toollock", "tool_lock":
			config.ToolLock = strings.ToLower(value) == "true"
		case "defaultborder", "default_border", "border":
			style, err := ParseBorderStyle(value)
			if err != nil {
				log.Printf("config: %v", err)
				continue
			}
			config.DefaultBorder = style
		case "confirmquit", "confirm_quit", "confirm":
			config.ConfirmQuit = strings.ToLower(value) == "true"
		}
	}

	return config
}

// GetSavePath places bare file names in the configured save directory.
func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) || strings.ContainsRune(filename, filepath.Separator) {
		return filename
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		log.Printf("config: save directory: %v", err)
	}
	return filepath.Join(c.SaveDirectory, filename)
}
